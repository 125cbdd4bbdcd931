// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-id-verifier/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/pii_envelope_mock.go -package=mock

// PiiEnvelope protects single text fields holding personal data before they
// are persisted.
//
// Encryption and decryption are idempotent: a value already in the target
// form is returned unchanged. Absent (nil) and blank values pass through.
//
// Envelope format:
//
//	enc:v1:<base64(nonce ‖ ciphertext ‖ tag)>
type PiiEnvelope interface {
	// Encrypt seals plaintext with a fresh random nonce.
	Encrypt(plaintext *string) (*string, error)

	// Decrypt opens a value produced by Encrypt.
	Decrypt(tagged *string) (*string, error)

	// EncryptString is Encrypt for non-optional values.
	EncryptString(plaintext string) (string, error)

	// DecryptString is Decrypt for non-optional values.
	DecryptString(tagged string) (string, error)

	// EncryptFields passes every identity field through Encrypt.
	EncryptFields(fields models.IdentityFields) (models.IdentityFields, error)

	// DecryptFields passes every identity field through Decrypt.
	DecryptFields(fields models.IdentityFields) (models.IdentityFields, error)
}
