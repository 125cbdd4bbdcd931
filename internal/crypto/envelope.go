// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-id-verifier/models"
)

const (
	// EnvelopePrefix marks a value produced by the envelope.
	EnvelopePrefix = "enc:v1:"

	nonceSize = 12
	tagSize   = 16
)

// piiEnvelope is the AES-256-GCM implementation of [PiiEnvelope].
//
// The AEAD is built once from the derived key; cipher.AEAD is safe for
// concurrent use, so a single envelope is shared by all requests.
type piiEnvelope struct {
	aead cipher.AEAD

	// random is the nonce source. Tests may replace it.
	random io.Reader
}

// NewPiiEnvelope derives a 256-bit key as SHA-256(secret) and builds the
// envelope. An empty secret yields [ErrEmptySecret].
func NewPiiEnvelope(secret string) (PiiEnvelope, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &piiEnvelope{aead: gcm, random: rand.Reader}, nil
}

// Encrypt implements [PiiEnvelope].
func (e *piiEnvelope) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}

	sealed, err := e.EncryptString(*plaintext)
	if err != nil {
		return nil, err
	}

	return &sealed, nil
}

// Decrypt implements [PiiEnvelope].
func (e *piiEnvelope) Decrypt(tagged *string) (*string, error) {
	if tagged == nil {
		return nil, nil
	}

	opened, err := e.DecryptString(*tagged)
	if err != nil {
		return nil, err
	}

	return &opened, nil
}

// EncryptString implements [PiiEnvelope].
func (e *piiEnvelope) EncryptString(plaintext string) (string, error) {
	if isBlank(plaintext) || strings.HasPrefix(plaintext, EnvelopePrefix) {
		return plaintext, nil
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncrypt, err)
	}

	// blob = nonce ‖ ciphertext ‖ tag
	blob := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return EnvelopePrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString implements [PiiEnvelope].
//
// A blob that is not longer than the nonce decodes to "". Such values were
// written by a broken producer and are treated as empty rather than fatal.
func (e *piiEnvelope) DecryptString(tagged string) (string, error) {
	if isBlank(tagged) || !strings.HasPrefix(tagged, EnvelopePrefix) {
		return tagged, nil
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(tagged, EnvelopePrefix))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecrypt, err)
	}

	if len(blob) <= nonceSize {
		return "", nil
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(plaintext), nil
}

// EncryptFields implements [PiiEnvelope].
func (e *piiEnvelope) EncryptFields(fields models.IdentityFields) (models.IdentityFields, error) {
	return transformFields(fields, e.Encrypt)
}

// DecryptFields implements [PiiEnvelope].
func (e *piiEnvelope) DecryptFields(fields models.IdentityFields) (models.IdentityFields, error) {
	return transformFields(fields, e.Decrypt)
}

func transformFields(fields models.IdentityFields, fn func(*string) (*string, error)) (models.IdentityFields, error) {
	var (
		out models.IdentityFields
		err error
	)

	targets := []struct {
		src *string
		dst **string
	}{
		{fields.Name, &out.Name},
		{fields.IDNumber, &out.IDNumber},
		{fields.DOB, &out.DOB},
		{fields.Address, &out.Address},
		{fields.ExpiryDate, &out.ExpiryDate},
	}

	for _, t := range targets {
		if *t.dst, err = fn(t.src); err != nil {
			return models.IdentityFields{}, err
		}
	}

	return out, nil
}

// IsEnvelope reports whether s carries the envelope prefix.
func IsEnvelope(s string) bool {
	return strings.HasPrefix(s, EnvelopePrefix)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
