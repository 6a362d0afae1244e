package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// WriteJSON writes v inside a success envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, v api.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

// WriteError translates err at the boundary and renders the envelope.
// Known client errors become "fail" with their status code, everything
// else is an opaque server fault.
func WriteError(w http.ResponseWriter, err error) {
	err = errors.Translate(err)

	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) && e.StatusCode < http.StatusInternalServerError {
		WriteJSON(w, e.StatusCode, api.Fail(e.Message))
		return
	}

	logger.Log.Error("internal server error", "err", err)
	WriteJSON(w, http.StatusInternalServerError, api.Error("terjadi kegagalan pada server kami"))
}

// DecodeMap decodes a JSON object body into a mutable payload map.
// An empty body yields an empty map so entity validation reports missing
// properties instead of a decode failure.
func DecodeMap(r io.ReadCloser) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil && err != io.EOF {
		return nil, &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return payload, nil
}

// DecodeValidate decodes into a tagged DTO and checks its validate tags.
// A field of the wrong JSON type fails with typeCode, a missing required
// field with missingCode; the boundary translator maps both to their
// localized messages.
func DecodeValidate(r io.ReadCloser, body any, missingCode, typeCode string) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return stderrors.New(typeCode)
		}
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if err := validate.Struct(body); err != nil {
		return stderrors.New(missingCode)
	}
	return nil
}
