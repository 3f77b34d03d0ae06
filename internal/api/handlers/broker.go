package handlers

import (
	"net/http"
	"time"

	"github.com/marketdesk/paper-trading-backend/internal/api/request"
	"github.com/marketdesk/paper-trading-backend/internal/service"
	"github.com/marketdesk/paper-trading-backend/internal/validation"
)

// BrokerHandler handles broker credential HTTP requests.
type BrokerHandler struct {
	brokerService *service.BrokerService
}

// NewBrokerHandler creates a new BrokerHandler
func NewBrokerHandler(brokerService *service.BrokerService) *BrokerHandler {
	return &BrokerHandler{
		brokerService: brokerService,
	}
}

// BrokerConfigResponse describes the stored broker connection. The
// access token itself never leaves the server.
type BrokerConfigResponse struct {
	ClientID  string    `json:"clientId"`
	Connected bool      `json:"connected"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Config returns the current broker connection, without the token.
//
// Endpoint: GET /api/broker
// Error: 404 when no credentials are stored
func (h *BrokerHandler) Config(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.brokerService.GetConfig()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, BrokerConfigResponse{
		ClientID:  cfg.ClientID,
		Connected: true,
		UpdatedAt: cfg.UpdatedAt,
	})
}

// SaveConfig stores broker API credentials, encrypting the access token
// at rest.
//
// Endpoint: PUT /api/broker
func (h *BrokerHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	var req request.SaveBrokerConfigRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateSaveBrokerConfig(req); err != nil {
		respondServiceError(w, err)
		return
	}

	cfg, err := h.brokerService.SaveConfig(req.ClientID, req.AccessToken)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, BrokerConfigResponse{
		ClientID:  cfg.ClientID,
		Connected: true,
		UpdatedAt: cfg.UpdatedAt,
	})
}

// ClearConfig removes the stored broker credentials.
//
// Endpoint: DELETE /api/broker
func (h *BrokerHandler) ClearConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.brokerService.ClearConfig(); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
