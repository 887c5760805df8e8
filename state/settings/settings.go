// Package settings provides read access to on-chain configuration values.
// Settings are plain string key-values agreed through the ledger itself;
// block construction only ever reads them.
package settings

import (
	"errors"
)

// ErrNotSet is returned when a setting has no value on the current chain.
var ErrNotSet = errors.New("setting not set")

// BlockValidationRulesKey holds the rule string consumed by the validation
// rule enforcer.
const BlockValidationRulesKey = "forge.validator.block_validation_rules"

// Reader gives access to the chain settings in effect for the block
// currently under construction.
type Reader interface {

	// Get returns the value of the given setting key, or ErrNotSet if the
	// chain defines no value for it.
	Get(key string) (string, error)
}

// Map is an immutable in-memory settings Reader. The surrounding chain
// controller snapshots the settings in effect at the previous block and
// hands them to the candidate machinery as a Map.
type Map map[string]string

func (m Map) Get(key string) (string, error) {
	value, ok := m[key]
	if !ok {
		return "", ErrNotSet
	}
	return value, nil
}
