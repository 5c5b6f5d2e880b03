package eval

import (
	"fmt"
	"strings"
)

// CyclePolicy decides what a circular reference evaluates to.
type CyclePolicy int

const (
	// CycleAsError turns formulas that reach a cycle into CycleError.
	CycleAsError CyclePolicy = iota
	// CycleAsZero lets the cyclic reference contribute zero.
	CycleAsZero
)

// String returns the configuration name of the policy.
func (p CyclePolicy) String() string {
	switch p {
	case CycleAsZero:
		return "zero"
	default:
		return "error"
	}
}

// ParseCyclePolicy maps a configuration name to a policy. The empty string
// selects the default, CycleAsError.
func ParseCyclePolicy(name string) (CyclePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "error":
		return CycleAsError, nil
	case "zero":
		return CycleAsZero, nil
	default:
		return CycleAsError, fmt.Errorf("invalid cycle policy %q: must be 'error' or 'zero'", name)
	}
}
