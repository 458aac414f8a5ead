// nurse launches a target executable under kernel-enforced resource limits
// and a user-space syscall policy, then reports its outcome.
//
// Usage:
//
//	nurse [NAME soft hard]... -- executable [args...]
//	nurse [NAME soft hard]... executable
package main

import (
	"os"

	"nurse/cmd"
	"nurse/errors"
	"nurse/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Default().Error(err.Error())
		os.Exit(errors.ExitCodeFor(err))
	}
}
