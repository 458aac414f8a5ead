// Package cmd implements the nurse command-line entrypoint.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"nurse/binder"
	"nurse/errors"
	"nurse/linux"
	"nurse/logging"
	"nurse/policy"
	"nurse/supervisor"
)

// ReportFailureEnv is the environment switch that enables "propagate child
// failure" mode (§4.7, §6). Its value is interpreted as a decimal fraction,
// matching traça.c's `atof(r) > 0.5` test exactly: values strictly greater
// than 0.5 enable the mode, and an unparseable value permissively falls
// back to 0 (disabled) rather than erroring the invocation.
const ReportFailureEnv = "NURSE_HACK_REPORT_EXIT_FAIL"

// rootCmd is nurse's single command. Flag parsing is disabled: the raw
// token stream carries the "--" separator and the target's own argv, which
// must reach binder.Bind untouched rather than be intercepted by cobra's
// own flag parser (SPEC_FULL.md §10).
var rootCmd = &cobra.Command{
	Use:                "nurse [NAME soft hard]... -- executable [args...]",
	Short:              "run a program under resource limits and a syscall policy",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runNurse,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runNurse(cmd *cobra.Command, rawArgs []string) error {
	log := logging.Default()

	registry := linux.NewRegistry()
	if err := supervisor.CheckConsistency(registry); err != nil {
		return err
	}

	result, err := binder.Bind(rawArgs)
	if err != nil {
		return err
	}

	traceEnabled, err := policy.Load(registry)
	if err != nil {
		if errors.IsKind(err, errors.ErrPolicyMissing) {
			log.Warn("policy file unavailable, tracing disabled", slog.String("error", err.Error()))
			traceEnabled = false
		} else {
			return err
		}
	}

	program := supervisor.NewProgram(result.ChildArgv, result.Limits, registry)
	program.TraceEnabled = traceEnabled
	program.ReportChildFailure = reportChildFailureEnabled()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := supervisor.Run(ctx, program); err != nil {
		return err
	}

	os.Exit(program.ExitStatus)
	return nil
}

func reportChildFailureEnabled() bool {
	f, err := strconv.ParseFloat(os.Getenv(ReportFailureEnv), 64)
	if err != nil {
		return false
	}
	return f > 0.5
}
