package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/marketdesk/paper-trading-backend/internal/apperrors"
	"github.com/marketdesk/paper-trading-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps domain errors onto HTTP status codes.
// Validation failures become 400 with the per-field messages as details;
// business rule rejections become 422; quote provider failures become
// 502 so callers can tell an upstream outage from their own bad input.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrInsufficientHoldings):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrQuoteUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, apperrors.ErrInvalidSymbol),
		errors.Is(err, apperrors.ErrInvalidQuantity),
		errors.Is(err, apperrors.ErrInvalidCapital),
		errors.Is(err, apperrors.ErrInvalidPrice):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrHoldingNotFound),
		errors.Is(err, apperrors.ErrWatchlistItemNotFound),
		errors.Is(err, apperrors.ErrBrokerConfigNotFound),
		errors.Is(err, apperrors.ErrSymbolNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		status = http.StatusConflict
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON reads a JSON request body into dst. A malformed body is a
// client error, reported as 400 with the decode failure as detail.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return false
	}
	return true
}
