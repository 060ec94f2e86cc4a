package crypto

// KeyDeriver turns a password and a salt into a symmetric key.
//
// Implementations are deterministic: equal inputs always produce equal keys.
// They hold no mutable state and are safe for concurrent use.
type KeyDeriver interface {
	// DeriveKey returns a KeySize-byte key for password and salt.
	// An empty salt is rejected with ErrInvalidKeyMaterial.
	DeriveKey(password string, salt []byte) ([]byte, error)
}

// FieldCodec encrypts and decrypts single text fields.
//
// The codec is unauthenticated. A modified ciphertext or IV either fails
// with ErrDecodeFailure or silently decodes to different text.
type FieldCodec interface {
	// Encrypt pads the UTF-8 bytes of plaintext and encrypts them with key and iv.
	Encrypt(plaintext string, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Invalid length, padding or UTF-8 yields
	// ErrDecodeFailure.
	Decrypt(ciphertext, key, iv []byte) (string, error)
}

// NoteCipher groups everything needed to protect the fields of one note:
// a fresh CipherContext per note, field encryption and key re-derivation
// from a typed password.
type NoteCipher interface {
	// NewContext creates a context with fresh salt and IV and returns it
	// together with the key derived from password.
	NewContext(password string) (*CipherContext, []byte, error)

	// Unlock re-derives the key of cc from password and the stored salt.
	// The key stored inside cc is never used.
	Unlock(password string, cc *CipherContext) ([]byte, error)

	// Encrypt encrypts plaintext with key and the IV of cc.
	Encrypt(plaintext string, key []byte, cc *CipherContext) ([]byte, error)

	// Decrypt decrypts field with key and the IV of cc.
	Decrypt(field []byte, key []byte, cc *CipherContext) (string, error)

	// Serialize returns the persisted form of cc. Depending on configuration
	// the key region is zeroed.
	Serialize(cc *CipherContext) []byte
}
