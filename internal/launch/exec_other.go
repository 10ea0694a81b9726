//go:build !unix

package launch

import "os/exec"

func detach(_ *exec.Cmd) {}

// Resolve looks program up on PATH.
func Resolve(program string) (string, error) {
	return exec.LookPath(program)
}
