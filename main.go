package main

import "github.com/HotpotSnowguy/yeet/cmd"

func main() {
	cmd.Execute()
}
