// Package names implements the shared naming rules and CRUD flows for the
// name-only catalog kinds (categories and labels). Both kinds follow the
// exact same protocol; only the wording, routes and templates differ.
package names

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/eternity-labs/catalog-admin/core"
)

// MaxNameLen bounds category and label names.
const MaxNameLen = 20

// Lookup reports whether a record with the given normalized name exists
// for the validated kind.
type Lookup func(name string) (bool, error)

// Validator applies the naming rules for one entity kind: required,
// length bound and per-kind uniqueness. Violations accumulate; a
// submission is reported with every rule it breaks.
type Validator struct {
	Field  string // form field and message noun, e.g. "category"
	MaxLen int
	Exists Lookup
}

// Check validates a raw submitted name for the create flow. It returns the
// normalized form to persist together with the violation messages; the
// name is only usable when the message list is empty. A non-nil error
// means the uniqueness lookup itself failed.
func (v *Validator) Check(raw string) (string, []string, error) {
	return v.run(raw, "")
}

// CheckRename validates a raw name for the edit flow. The record currently
// named current is exempt from the uniqueness rule, so renaming a record
// to its own name (in any letter case) is accepted.
func (v *Validator) CheckRename(raw, current string) (string, []string, error) {
	return v.run(raw, current)
}

func (v *Validator) run(raw, current string) (string, []string, error) {
	var msgs []string
	if raw == "" {
		msgs = append(msgs, fmt.Sprintf("The %s is required", v.Field))
	}
	if utf8.RuneCountInString(raw) > v.MaxLen {
		msgs = append(msgs, fmt.Sprintf("The %s is too long", v.Field))
	}
	normalized := core.NormalizeName(raw)
	if raw != "" {
		found, err := v.Exists(normalized)
		if err != nil {
			return "", nil, err
		}
		if found && !strings.EqualFold(normalized, current) {
			msgs = append(msgs, fmt.Sprintf("The %s is already taken", v.Field))
		}
	}
	return normalized, msgs, nil
}
