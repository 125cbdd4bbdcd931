package crypto

import "errors"

var (
	// ErrEmptySecret is returned by NewPiiEnvelope when no encryption secret
	// is configured. The service must not start without one.
	ErrEmptySecret = errors.New("encryption secret is empty")

	// ErrEncrypt wraps any failure while sealing a value.
	ErrEncrypt = errors.New("failed to encrypt value")

	// ErrDecrypt wraps any failure while opening a tagged value: malformed
	// base64, wrong key or a corrupted authentication tag.
	ErrDecrypt = errors.New("failed to decrypt value")
)
