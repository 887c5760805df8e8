// Package signature provides the local identity signer used to sign block
// headers. Signatures are deterministic ECDSA over secp256k1, computed on
// the sha256 digest of the message.
package signature

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Local holds the secp256k1 key pair of the validator and implements
// module.Local.
type Local struct {
	priv *btcec.PrivateKey
	pub  []byte
}

// NewLocal wraps an existing private key.
func NewLocal(priv *btcec.PrivateKey) *Local {
	return &Local{
		priv: priv,
		pub:  priv.PubKey().SerializeCompressed(),
	}
}

// GenerateLocal creates a signer with a fresh random key. Intended for
// tests and local networks; production deployments load their key through
// the node bootstrap.
func GenerateLocal() (*Local, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("could not generate private key: %w", err)
	}
	return NewLocal(priv), nil
}

// PublicKey returns the compressed serialization of the signer's public key.
func (l *Local) PublicKey() []byte {
	return l.pub
}

// Sign signs the sha256 digest of the given message.
func (l *Local) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(l.priv, digest[:])
	return sig.Serialize(), nil
}
