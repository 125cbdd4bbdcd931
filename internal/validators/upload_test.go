// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-id-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func validUpload() models.Upload {
	return models.Upload{
		FileName:    "passport.png",
		ContentType: "image/png",
		Data:        pngMagic,
	}
}

func TestNewUploadValidator(t *testing.T) {
	require.NotNil(t, NewUploadValidator(1024))
}

func TestUploadValidator_Dispatch(t *testing.T) {
	v := NewUploadValidator(1024)
	ctx := context.Background()

	u := validUpload()
	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))

	user := models.User{Username: "alice", Password: "secret"}
	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "upload"), ErrUnsupportedType)
}

func TestUploadValidator_Upload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *models.Upload)
		maxSize int64
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Upload) {}, maxSize: 1024},
		{name: "empty data", mutate: func(u *models.Upload) { u.Data = nil }, maxSize: 1024, wantErr: ErrEmptyFile},
		{name: "too large", mutate: func(u *models.Upload) { u.Data = bytes.Repeat([]byte{1}, 2048) }, maxSize: 1024, wantErr: ErrFileTooLarge},
		{name: "size check disabled", mutate: func(u *models.Upload) { u.Data = bytes.Repeat([]byte{1}, 2048) }, maxSize: 0},
		{name: "exactly max", mutate: func(u *models.Upload) { u.Data = bytes.Repeat([]byte{1}, 1024) }, maxSize: 1024},
		{name: "pdf rejected", mutate: func(u *models.Upload) { u.ContentType = "application/pdf" }, maxSize: 1024, wantErr: ErrUnsupportedContentType},
		{name: "jpeg with params", mutate: func(u *models.Upload) { u.ContentType = "image/JPEG; q=1" }, maxSize: 1024},
		{name: "tiff", mutate: func(u *models.Upload) { u.ContentType = "image/tiff" }, maxSize: 1024},
		{name: "webp", mutate: func(u *models.Upload) { u.ContentType = "image/webp" }, maxSize: 1024},
		{name: "octet stream sniffed as png", mutate: func(u *models.Upload) { u.ContentType = "application/octet-stream" }, maxSize: 1024},
		{name: "missing type sniffed as text", mutate: func(u *models.Upload) {
			u.ContentType = ""
			u.Data = []byte("hello world")
		}, maxSize: 1024, wantErr: ErrUnsupportedContentType},
		{name: "blank name", mutate: func(u *models.Upload) { u.FileName = "  " }, maxSize: 1024, wantErr: ErrInvalidFileName},
		{name: "path in name", mutate: func(u *models.Upload) { u.FileName = "../etc/passwd" }, maxSize: 1024, wantErr: ErrInvalidFileName},
		{name: "backslash in name", mutate: func(u *models.Upload) { u.FileName = `c:\id.png` }, maxSize: 1024, wantErr: ErrInvalidFileName},
		{name: "control char in name", mutate: func(u *models.Upload) { u.FileName = "id\n.png" }, maxSize: 1024, wantErr: ErrInvalidFileName},
		{name: "overlong name", mutate: func(u *models.Upload) { u.FileName = strings.Repeat("a", 300) + ".png" }, maxSize: 1024, wantErr: ErrInvalidFileName},
		{name: "unicode name", mutate: func(u *models.Upload) { u.FileName = "паспорт.png" }, maxSize: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUpload()
			tt.mutate(&u)

			err := NewUploadValidator(tt.maxSize).Validate(context.Background(), u)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUploadValidator_FieldScoping(t *testing.T) {
	v := NewUploadValidator(1024)
	ctx := context.Background()

	u := validUpload()
	u.FileName = ""

	assert.NoError(t, v.Validate(ctx, u, FieldFile, FieldContentType))
	assert.ErrorIs(t, v.Validate(ctx, u, FieldFileName), ErrInvalidFileName)
	assert.ErrorIs(t, v.Validate(ctx, u, "bogus"), ErrUnknownField)
}

func TestUploadValidator_EmptyCheckedBeforeType(t *testing.T) {
	u := models.Upload{FileName: "a.pdf", ContentType: "application/pdf"}

	err := NewUploadValidator(1024).Validate(context.Background(), u)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploadValidator_User(t *testing.T) {
	v := NewUploadValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Username: "bob", Password: "pw"}},
		{name: "blank username", user: models.User{Username: " ", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "empty password", user: models.User{Username: "bob"}, wantErr: ErrEmptyPassword},
		{name: "only username", user: models.User{Username: "bob"}, fields: []string{FieldUsername}},
		{name: "unknown field", user: models.User{Username: "bob", Password: "pw"}, fields: []string{FieldFile}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
