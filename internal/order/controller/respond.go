package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "posterworks/internal/errors"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses with a structured
// body on every path; handlers never surface an unhandled fault.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		writeJSON(w, logger, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nf.Message,
		})
		return
	}

	if se, ok := apperrors.IsSignatureError(err); ok {
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_SIGNATURE",
			Message: se.Message,
		})
		return
	}

	if pe, ok := apperrors.IsProviderError(err); ok {
		writeJSON(w, logger, pe.StatusCode, errorResponse{
			Error:   "PROVIDER_ERROR",
			Message: pe.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		writeJSON(w, logger, http.StatusConflict, errorResponse{
			Error:   "CONFLICT",
			Message: ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
