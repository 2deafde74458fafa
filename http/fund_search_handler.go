package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"fund-selector/domain"
	"fund-selector/service"
)

type FundSearchHandler struct {
	service *service.FundSearchService
	log     zerolog.Logger
}

func NewFundSearchHandler(service *service.FundSearchService, log zerolog.Logger) *FundSearchHandler {
	return &FundSearchHandler{
		service: service,
		log:     log.With().Str("handler", "fund_search").Logger(),
	}
}

type fundSearchInput struct {
	Risk string `json:"risk"`
	domain.FundSearchOptions
}

func (h *FundSearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input fundSearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tier, ok := domain.ParseRiskTier(input.Risk)
	if !ok {
		writeError(w, http.StatusBadRequest, "risk must be one of LOW, MEDIUM, HIGH")
		return
	}

	result, err := h.service.Search(r.Context(), tier, input.FundSearchOptions)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, service.ErrFundSearchDisabled), errors.Is(err, service.ErrFundSearchUnavailable):
			status = http.StatusServiceUnavailable
		case errors.Is(err, service.ErrNoFunds):
			status = http.StatusNotFound
		}
		h.log.Warn().Err(err).Str("risk", tier.String()).Int("status", status).Msg("Fund search failed")
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
