package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTrailingJSON is returned by DecodeJSON when the body holds more than one
// JSON value.
var ErrTrailingJSON = errors.New("request body must contain a single JSON value")

// WriteJSON serializes data as the JSON response body with the given status.
//
// If marshaling fails nothing has been written yet, so it responds with
// 500 Internal Server Error instead and returns the wrapped error.
//
//	WriteJSON(w, models.NewErrorVerificationResult("no file uploaded"), http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes a single JSON value from the request body into v,
// reading at most maxBytes. Unknown fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingJSON
	}
	return nil
}
