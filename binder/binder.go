// Package binder implements the Argument Binder (AB): it splits the raw
// invocation tokens into a limits section and a child argv, activating
// entries in a Resource-Limit Table as it goes.
package binder

import (
	"strconv"

	"nurse/errors"
	"nurse/linux"
)

// Result is the outcome of binding invocation tokens: the child's argv
// (argv[0] is the executable path) and the limit table populated with
// whatever the limits section activated.
type Result struct {
	ChildArgv []string
	Limits    *linux.LimitTable
}

// Bind splits tokens per SPEC_FULL.md §4.1: locate "--"; if present, tokens
// before it are the limits section and tokens after it are the child argv;
// if absent, the whole token list must have at least two entries and the
// last one becomes a no-args child argv. The limits section is parsed in
// groups of three (NAME soft hard); groups that don't name a known
// resource are silently ignored.
func Bind(tokens []string) (*Result, error) {
	limitTokens, childArgv, err := split(tokens)
	if err != nil {
		return nil, err
	}

	table := linux.NewLimitTable()
	applyLimitGroups(table, limitTokens)

	return &Result{ChildArgv: childArgv, Limits: table}, nil
}

func split(tokens []string) (limitTokens, childArgv []string, err error) {
	dashIdx := -1
	for i, tok := range tokens {
		if tok == "--" {
			dashIdx = i
			break
		}
	}

	if dashIdx == -1 {
		if len(tokens) < 2 {
			return nil, nil, errors.ErrNoSeparatorNoArgv
		}
		return tokens[:len(tokens)-1], tokens[len(tokens)-1:], nil
	}

	rest := tokens[dashIdx+1:]
	if len(rest) == 0 {
		return nil, nil, errors.ErrEmptyChildArgv
	}
	return tokens[:dashIdx], rest, nil
}

// applyLimitGroups parses limitTokens in groups of three and activates
// each one that names a known resource. Numeric fields use a permissive
// parse that clamps unparseable or out-of-range values to 0 (SPEC_FULL.md
// §9 — this mirrors the original's decimal-parse-returns-0-on-failure
// behavior rather than rejecting the whole invocation).
func applyLimitGroups(table *linux.LimitTable, limitTokens []string) {
	for i := 0; i+3 <= len(limitTokens); i += 3 {
		name := limitTokens[i]
		soft := parsePermissive(limitTokens[i+1])
		hard := parsePermissive(limitTokens[i+2])
		table.Activate(name, soft, hard)
	}
}

// parsePermissive parses a signed decimal integer (spec.md §"numeric fields
// are parsed as signed integers") and sign-extends it into the unsigned
// rlim_t-equivalent representation the Resource-Limit Table stores, exactly
// as the original's atoi-then-assign-to-rlim_t does: a negative value such
// as -1 becomes the conventional "unlimited" sentinel, not zero. Only a
// genuine syntax or range error clamps to 0.
func parsePermissive(s string) uint64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint64(n)
}
