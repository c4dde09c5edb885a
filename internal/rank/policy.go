// Package rank computes rank numbers for a series of values under one of
// five tie-breaking policies. It is the computational core of stabrank:
// a pure function with no I/O, safe to call concurrently.
package rank

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects the tie-breaking convention.
// ⭐ SSOT: 순위 정책 정의는 여기서만
type Policy int

const (
	// PolicyDense ties share one rank, next distinct value = previous + 1 ("1 2 2 3")
	PolicyDense Policy = iota + 1
	// PolicyOrdinal every element gets a unique consecutive rank ("1 2 3 4")
	PolicyOrdinal
	// PolicyCompetition ties share the group minimum, next value skips by group size ("1 2 2 4")
	PolicyCompetition
	// PolicyModifiedCompetition ties share the group maximum ("1 3 3 4")
	PolicyModifiedCompetition
	// PolicyFractional ties share the mean of competition and modified ranks ("1 2.5 2.5 4")
	PolicyFractional
)

// Errors returned by the ranking core. No partial output accompanies them.
var (
	ErrInvalidPolicy = errors.New("rank: invalid ranking policy")
	ErrInvalidInput  = errors.New("rank: values are neither numeric nor categorical")
)

// Valid reports whether p is one of the five defined policies
func (p Policy) Valid() bool {
	return p >= PolicyDense && p <= PolicyFractional
}

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case PolicyDense:
		return "dense"
	case PolicyOrdinal:
		return "ordinal"
	case PolicyCompetition:
		return "competition"
	case PolicyModifiedCompetition:
		return "modified"
	case PolicyFractional:
		return "fractional"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy from its name or its 1-5 selector code.
// The numeric codes match the interactive CLI menu.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "dense":
		return PolicyDense, nil
	case "2", "ordinal":
		return PolicyOrdinal, nil
	case "3", "competition", "standard":
		return PolicyCompetition, nil
	case "4", "modified", "modified-competition":
		return PolicyModifiedCompetition, nil
	case "5", "fractional", "average":
		return PolicyFractional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Policies lists all defined policies in selector order (1-5)
func Policies() []Policy {
	return []Policy{
		PolicyDense,
		PolicyOrdinal,
		PolicyCompetition,
		PolicyModifiedCompetition,
		PolicyFractional,
	}
}
