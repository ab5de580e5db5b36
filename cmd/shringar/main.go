// Package main provides the shringar CLI: salon services, clients,
// appointments, staff, and jewelry inventory managed from the terminal and
// persisted locally.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an execution error to a process exit code: 2 for failures
// of the environment (store, config, filesystem), 1 for everything the
// user can correct.
func exitCode(err error) int {
	var se sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
