package server

import (
	"encoding/json"
	"net/http"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
)

// errorEnvelope is the JSON error body carrying the machine-readable code.
type errorEnvelope struct {
	Error struct {
		Code    gerr.Code `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors to HTTP statuses: validation and context
// errors are the caller's fault (400), unknown resources 404, everything
// else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := gerr.GetCode(err)
	switch {
	case gerr.IsValidation(err):
		status = http.StatusBadRequest
	case code == gerr.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	if code == "" {
		code = gerr.ErrCodeInternal
	}

	var env errorEnvelope
	env.Error.Code = code
	env.Error.Message = gerr.UserMessage(err)
	writeJSON(w, status, env)
}
