// Confirmation gate used before destructive commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm asks a yes/no question on the terminal before a delete proceeds.
// A package variable so tests and --yes can substitute it.
var confirm = promptConfirm

func promptConfirm(message string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
