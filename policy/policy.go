// Package policy implements the Policy Loader (PL): it reads the syscall
// policy file and mutates a Syscall Registry so that every named entry
// carries the configured per-run maximum call count.
package policy

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"nurse/errors"
	"nurse/linux"
)

// EnvConfigFile overrides the default policy-file path.
const EnvConfigFile = "PLIMIT_CONFIG_FILE"

// DefaultPath is used when EnvConfigFile is unset.
const DefaultPath = "/etc/nurse.conf"

// ResolvePath returns the policy-file path to use: the environment
// override if set, otherwise DefaultPath.
func ResolvePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	return DefaultPath
}

// Load resolves the policy-file path and loads it into reg. It reports
// whether tracing is enabled for this invocation: true on a successful
// load, false if the file could not be opened. A missing file is
// deliberately not a hard error (§4.2, §7) — the returned error, when
// non-nil, is always an errors.ErrPolicyMissing NurseError and the caller
// may choose to log it and continue.
func Load(reg *linux.Registry) (traceEnabled bool, err error) {
	return LoadFrom(ResolvePath(), reg)
}

// LoadFrom loads the policy file at path into reg. Before parsing, every
// populated registry entry has its MaxCalls and ObservedCalls reset to
// zero (§4.2 reset policy): the default regime under an active policy is
// whitelist-nothing.
func LoadFrom(path string, reg *linux.Registry) (traceEnabled bool, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return false, errors.ErrPolicyFileMissing.WithDetail("policy file not found: "+path).WithErr(openErr)
	}
	defer f.Close()

	reg.Reset()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		max, parseErr := strconv.Atoi(fields[1])
		if parseErr != nil {
			continue
		}
		reg.SetMax(fields[0], max)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return false, errors.Wrap(scanErr, errors.ErrPolicyMissing, "load-policy")
	}

	return true, nil
}
