package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// EnvVerbose is set for extensions to "true" when cruise runs with -v.
const EnvVerbose = "CRUISE_VERBOSE"

// Registered reports whether 'name' is a cruise subcommand, the commander's builtins included.
func Registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, e := range commands {
		if e.cmd.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external cruise-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "cruise-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("extension-not-found name=%q error=%q", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), EnvVerbose+"="+strconv.FormatBool(*Verbose))

	log.Printf("run-extension path=%q args=%q", lp, args)
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
