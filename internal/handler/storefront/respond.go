package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/omkaralabs/divinestore/internal/domain"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		// Encode errors past this point cannot reach the client anymore.
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps a domain error onto an HTTP status and JSON envelope.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if fields := domain.GetValidationFields(err); fields != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Code:   domain.EINVALID,
			Fields: fields,
		})
		return
	}

	code := domain.ErrorCode(err)
	if code == domain.EINTERNAL {
		logger.Error("request failed", "error", err)
	}

	writeJSON(w, statusFromCode(code), errorResponse{
		Error: domain.ErrorMessage(err),
		Code:  code,
	})
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: message,
		Code:  domain.EINVALID,
	})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
