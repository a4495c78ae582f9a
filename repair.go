package jsonpad

import (
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Repairer produces best-effort repaired text from malformed JSON.
type Repairer interface {
	RepairJSON(text string) (string, error)
}

// RepairerFunc adapts a plain function to the [Repairer] interface.
type RepairerFunc func(text string) (string, error)

func (f RepairerFunc) RepairJSON(text string) (string, error) {
	return f(text)
}

// DefaultRepairer repairs with the jsonrepair library.
var DefaultRepairer Repairer = RepairerFunc(jsonrepair.JSONRepair)

// Repair runs r (or [DefaultRepairer] when nil) over text and re-validates
// the result. Repaired text that still fails to parse is reported as
// [ErrRepairUnverified], distinct from the collaborator's own failure; it is
// never silently accepted.
func Repair(text string, r Repairer) (string, error) {
	if r == nil {
		r = DefaultRepairer
	}

	out, err := r.RepairJSON(text)
	if err != nil {
		return "", fmt.Errorf("%w / %w", err, ErrRepair)
	}

	if _, err := Parse(out); err != nil {
		return "", fmt.Errorf("%w / %w", err, ErrRepairUnverified)
	}

	return out, nil
}
