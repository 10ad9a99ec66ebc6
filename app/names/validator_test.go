package names

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eternity-labs/catalog-admin/core"
)

func lookupFrom(existing ...string) Lookup {
	return func(name string) (bool, error) {
		for _, e := range existing {
			if e == name {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestValidatorCheck(t *testing.T) {
	testCases := []struct {
		name         string
		existing     []string
		input        string
		expectedName string
		expectedMsgs []string
	}{
		{
			name:         "new name accepted and normalized",
			input:        "electronics",
			expectedName: "Electronics",
		},
		{
			name:         "duplicate rejected regardless of submitted case",
			existing:     []string{"Electronics"},
			input:        "electronics",
			expectedMsgs: []string{"The category is already taken"},
		},
		{
			name:         "empty reports required only",
			input:        "",
			expectedMsgs: []string{"The category is required"},
		},
		{
			name:         "too long",
			input:        strings.Repeat("a", MaxNameLen+1),
			expectedMsgs: []string{"The category is too long"},
		},
		{
			name:         "violations accumulate",
			existing:     []string{core.NormalizeName(strings.Repeat("a", MaxNameLen+1))},
			input:        strings.Repeat("a", MaxNameLen+1),
			expectedMsgs: []string{"The category is too long", "The category is already taken"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := &Validator{Field: "category", MaxLen: MaxNameLen, Exists: lookupFrom(tc.existing...)}
			normalized, msgs, err := v.Check(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedMsgs, msgs)
			if len(tc.expectedMsgs) == 0 {
				assert.Equal(t, tc.expectedName, normalized)
			}
		})
	}
}

func TestValidatorCheckRename(t *testing.T) {
	testCases := []struct {
		name         string
		existing     []string
		input        string
		current      string
		expectedMsgs []string
	}{
		{
			name:     "rename to own name is not a collision",
			existing: []string{"Electronics"},
			input:    "Electronics",
			current:  "Electronics",
		},
		{
			name:     "exemption is case-insensitive",
			existing: []string{"Electronics"},
			input:    "electronics",
			current:  "ELECTRONICS",
		},
		{
			name:         "rename onto another record rejected",
			existing:     []string{"Electronics", "Shoes"},
			input:        "shoes",
			current:      "Electronics",
			expectedMsgs: []string{"The category is already taken"},
		},
		{
			name:     "rename to a free name accepted",
			existing: []string{"Electronics"},
			input:    "gadgets",
			current:  "Electronics",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := &Validator{Field: "category", MaxLen: MaxNameLen, Exists: lookupFrom(tc.existing...)}
			_, msgs, err := v.CheckRename(tc.input, tc.current)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedMsgs, msgs)
		})
	}
}

func TestValidatorLookupError(t *testing.T) {
	lookupErr := errors.New("db down")
	v := &Validator{
		Field:  "category",
		MaxLen: MaxNameLen,
		Exists: func(string) (bool, error) { return false, lookupErr },
	}
	_, _, err := v.Check("electronics")
	assert.ErrorIs(t, err, lookupErr)
}
