package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-id-verifier/internal/crypto"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/internal/store"
	"github.com/MKhiriev/go-id-verifier/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrMissingFilePart: http.StatusBadRequest,
	ErrInvalidLimit:    http.StatusBadRequest,

	validators.ErrEmptyFile:              http.StatusBadRequest,
	validators.ErrFileTooLarge:           http.StatusBadRequest,
	validators.ErrUnsupportedContentType: http.StatusBadRequest,
	validators.ErrInvalidFileName:        http.StatusBadRequest,
	validators.ErrEmptyUsername:          http.StatusBadRequest,
	validators.ErrEmptyPassword:          http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	service.ErrObjectStorage:  http.StatusBadGateway,
	service.ErrImageAnalysis:  http.StatusBadGateway,
	service.ErrTextExtraction: http.StatusBadGateway,
	service.ErrProtectFields:  http.StatusInternalServerError,
	service.ErrPersistRecord:  http.StatusInternalServerError,
	service.ErrReadRecord:     http.StatusInternalServerError,

	crypto.ErrDecrypt: http.StatusInternalServerError,
	crypto.ErrEncrypt: http.StatusInternalServerError,

	store.ErrVerificationNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
