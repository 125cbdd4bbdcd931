package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
	"github.com/MKhiriev/go-id-verifier/internal/validators"
	"github.com/MKhiriev/go-id-verifier/models"
)

const (
	uploadFormField = "file"

	// multipartOverhead is the allowance for boundaries and part headers on
	// top of the largest accepted document.
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
)

// pipelineStages are reported to the caller by name when a verification
// fails after validation.
var pipelineStages = []error{
	service.ErrObjectStorage,
	service.ErrImageAnalysis,
	service.ErrTextExtraction,
	service.ErrProtectFields,
	service.ErrPersistRecord,
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	upload, err := h.readUpload(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("rejected upload")
		utils.WriteJSON(w, models.NewErrorVerificationResult(err.Error()), statusFromError(err))
		return
	}

	log.Info().Str("file_name", upload.FileName).Int64("size", upload.Size()).Msg("starting verification")

	result, err := h.services.VerificationService.Verify(ctx, upload)
	if err != nil {
		status := statusFromError(err)
		message := failureMessage(err)
		if status < http.StatusInternalServerError {
			message = err.Error()
		}
		log.Error().Err(err).Str("func", "*Handler.verify").Int("status", status).Msg("verification failed")
		utils.WriteJSON(w, models.NewErrorVerificationResult(message), status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// readUpload reads the multipart "file" part. Bodies larger than the upload
// limit are reported as [validators.ErrFileTooLarge].
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (models.Upload, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if maxBytesErr := new(http.MaxBytesError); errors.As(err, &maxBytesErr) {
			return models.Upload{}, validators.ErrFileTooLarge
		}
		return models.Upload{}, ErrMissingFilePart
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		return models.Upload{}, ErrMissingFilePart
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Upload{}, err
	}

	return models.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// failureMessage names the failed stage without exposing provider details.
func failureMessage(err error) string {
	for _, stage := range pipelineStages {
		if errors.Is(err, stage) {
			return "Verification failed: " + stage.Error()
		}
	}
	return "Verification failed"
}

func (h *Handler) listVerifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("limit", raw).Send()
			http.Error(w, ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.services.VerificationService.ListVerifications(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.listVerifications").Msg("error listing verifications")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	record, err := h.services.VerificationService.GetVerification(r.Context(), id)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("func", "*Handler.getVerification").Str("record_id", id).Msg("error reading verification")
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.VerificationService.Stats(r.Context())
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Str("func", "*Handler.stats").Msg("error computing stats")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.VerificationService.Health(r.Context()), http.StatusOK)
}
