package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/HotpotSnowguy/yeet/internal/apps"
)

// terminalExecFlag is what terminal emulators conventionally accept before
// the command they should run.
const terminalExecFlag = "-e"

// Invocation is a fully resolved process to start, without any shell.
type Invocation struct {
	Program string
	Args    []string
}

// String renders the invocation for display only; it is never executed.
func (inv Invocation) String() string {
	parts := make([]string, 0, len(inv.Args)+1)
	for _, p := range append([]string{inv.Program}, inv.Args...) {
		if p == "" || strings.ContainsAny(p, " \t\"'\\") {
			p = fmt.Sprintf("%q", p)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// BuildInvocation resolves how app should be started.
//
// Terminal apps are wrapped as: terminal program, terminal args, "-e", app
// program, app args. Errors from the terminal template are reported with the
// terminal sentinels so they are not confused with a broken app entry.
func BuildInvocation(app apps.Application, terminal string) (Invocation, error) {
	program, args, err := SanitizeExec(app.Exec)
	if err != nil {
		return Invocation{}, err
	}
	if !app.Terminal {
		return Invocation{Program: program, Args: args}, nil
	}

	termProgram, termArgs, err := splitCommand(terminal)
	if err != nil {
		return Invocation{}, err
	}

	final := make([]string, 0, len(termArgs)+2+len(args))
	final = append(final, termArgs...)
	final = append(final, terminalExecFlag, program)
	final = append(final, args...)
	return Invocation{Program: termProgram, Args: final}, nil
}

// Start spawns inv without a shell and returns without waiting for it. The
// child runs in its own session from the home directory.
func Start(inv Invocation) error {
	// Nil Stdin/Stdout/Stderr are wired to the null device by os/exec.
	c := exec.Command(inv.Program, inv.Args...)
	if home, err := os.UserHomeDir(); err == nil {
		c.Dir = home
	}
	detach(c)
	if err := c.Start(); err != nil {
		return err
	}
	return c.Process.Release()
}

// Launch builds and starts the invocation for app.
func Launch(app apps.Application, terminal string) error {
	inv, err := BuildInvocation(app, terminal)
	if err != nil {
		return fmt.Errorf("cannot build launch command for %s: %w", app.Name, err)
	}
	if err := Start(inv); err != nil {
		return fmt.Errorf("cannot launch %s: %w", app.Name, err)
	}
	return nil
}
