package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/ports/docstore"
)

// WriteJSON es el helper común de respuestas (antes duplicado por módulo).
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusFor traduce la taxonomía de errores a códigos HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidID), errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrUnseenCategory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrUnavailable), errors.Is(err, docstore.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError escribe {"error": ...}. Los 500 no exponen el detalle interno.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	body := errorBody{Error: err.Error()}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Fields
	}
	if status == http.StatusInternalServerError {
		body = errorBody{Error: "internal error"}
	}
	if status == http.StatusServiceUnavailable {
		body = errorBody{Error: apperr.ErrUnavailable.Error()}
	}

	WriteJSON(w, status, body)
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("body", "empty body")
		}
		return apperr.Invalid("body", fmt.Sprintf("invalid json: %v", err))
	}
	return nil
}
