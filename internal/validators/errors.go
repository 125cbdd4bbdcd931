package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFile              = errors.New("no file uploaded")
	ErrFileTooLarge           = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedContentType = errors.New("only image files are allowed")
	ErrInvalidFileName        = errors.New("invalid file name")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
)
