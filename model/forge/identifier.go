package forge

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Identifier represents a 32-byte unique identifier for an entity. All
// identifiers are content hashes, so two entities with equal identifiers
// are byte-equal.
type Identifier [32]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// HashToID hashes the input data and returns the resulting identifier.
func HashToID(data []byte) Identifier {
	return Identifier(sha256.Sum256(data))
}

// HexStringToIdentifier converts a hex string to an identifier. The input
// must be 64 characters long and contain only hex characters.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var id Identifier
	n, err := hex.Decode(id[:], []byte(hexString))
	if err != nil {
		return ZeroID, err
	}
	if n != 32 {
		return ZeroID, fmt.Errorf("malformed input, expected 32 bytes (64 characters), decoded %d", n)
	}
	return id, nil
}

func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// Format handles formatting of id for different verbs. This is called when
// formatting an identifier with fmt.
func (id Identifier) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		_, _ = state.Write([]byte(id.String()))
	default:
		_, _ = state.Write([]byte(fmt.Sprintf("%%!%c(%s=%s)", verb, "Identifier", id.String())))
	}
}

// IdentifierList defines a sortable list of identifiers.
type IdentifierList []Identifier

// Strings returns the hex representation of every identifier in the list,
// preserving order.
func (il IdentifierList) Strings() []string {
	ss := make([]string, 0, len(il))
	for _, id := range il {
		ss = append(ss, id.String())
	}
	return ss
}

// Contains reports whether the given identifier is part of the list.
func (il IdentifierList) Contains(target Identifier) bool {
	for _, id := range il {
		if id == target {
			return true
		}
	}
	return false
}
