package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when the requested KDF is not available.
	ErrUnsupportedAlgorithm = errors.New("unsupported key derivation algorithm")

	// ErrMalformedContext is returned when a serialized cipher context is
	// shorter than ContextSize.
	ErrMalformedContext = errors.New("malformed cipher context")

	// ErrDecodeFailure is returned when ciphertext cannot be decoded with
	// the given key: bad length, bad padding or non UTF-8 plaintext.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrInvalidKeyMaterial is returned for keys, salts or IVs of the wrong size.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
