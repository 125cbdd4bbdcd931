package validators

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-id-verifier/models"
)

// Field name constants accepted by [UploadValidator.Validate].
const (
	// FieldFile targets presence of file content.
	FieldFile = "file"

	// FieldFileSize targets the maximum upload size.
	FieldFileSize = "file_size"

	// FieldContentType targets the image content type allow-list.
	FieldContentType = "content_type"

	// FieldFileName targets the original file name.
	FieldFileName = "file_name"

	// FieldUsername targets the login name of a [models.User].
	FieldUsername = "username"

	// FieldPassword targets the password of a [models.User].
	FieldPassword = "password"
)

const maxFileNameLength = 255

// allowedContentTypes are the image formats the pipeline can decode.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/bmp":  {},
	"image/tiff": {},
}

// UploadValidator checks document uploads and login requests before they
// reach the services.
type UploadValidator struct {
	maxSize int64
}

// NewUploadValidator returns a [Validator] rejecting uploads larger than
// maxSize bytes. A non-positive maxSize disables the size check.
func NewUploadValidator(maxSize int64) Validator {
	return &UploadValidator{maxSize: maxSize}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Upload:
		return v.validateUpload(ctx, value, fields...)
	case *models.Upload:
		return v.validateUpload(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUpload checks, by default, presence, size, content type and file
// name in that order.
func (v *UploadValidator) validateUpload(_ context.Context, upload models.Upload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldFileSize, FieldContentType, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if len(upload.Data) == 0 {
				return ErrEmptyFile
			}
		case FieldFileSize:
			if v.maxSize > 0 && upload.Size() > v.maxSize {
				return fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, upload.Size(), v.maxSize)
			}
		case FieldContentType:
			if !isAllowedContentType(upload) {
				return ErrUnsupportedContentType
			}
		case FieldFileName:
			if !isValidFileName(upload.FileName) {
				return ErrInvalidFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UploadValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isAllowedContentType checks the declared content type. Uploads declared as
// generic binary are sniffed instead.
func isAllowedContentType(upload models.Upload) bool {
	declared := normalizeContentType(upload.ContentType)
	if declared == "" || declared == "application/octet-stream" {
		declared = normalizeContentType(http.DetectContentType(upload.Data))
	}

	_, ok := allowedContentTypes[declared]
	return ok
}

func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func isValidFileName(name string) bool {
	if strings.TrimSpace(name) == "" || len(name) > maxFileNameLength || !utf8.ValidString(name) {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
