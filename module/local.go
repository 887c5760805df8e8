package module

// Local encapsulates the stable identity of the validator process: its
// public key and the ability to sign on its behalf.
type Local interface {

	// PublicKey returns the serialized public key of the local signer.
	PublicKey() []byte

	// Sign signs the given message with the local private key.
	Sign(msg []byte) ([]byte, error)
}
