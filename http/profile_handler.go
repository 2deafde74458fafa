package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fund-selector/domain"
	"fund-selector/service"
)

type ProfileHandler struct {
	profiles      *service.ProfileService
	funds         *service.FundSearchService
	enrichTimeout time.Duration
	log           zerolog.Logger
}

func NewProfileHandler(
	profiles *service.ProfileService,
	funds *service.FundSearchService,
	enrichTimeout time.Duration,
	log zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profiles:      profiles,
		funds:         funds,
		enrichTimeout: enrichTimeout,
		log:           log.With().Str("handler", "profile").Logger(),
	}
}

type profileResponse struct {
	Profile         domain.Profile `json:"profile"`
	Funds           []domain.Fund  `json:"funds,omitempty"`
	FundsCached     bool           `json:"funds_cached,omitempty"`
	FundSearchError string         `json:"fund_search_error,omitempty"`
}

// CreateProfile evaluates the submitted inputs. With ?enrich=true it also
// asks the fund-search backend for candidates; a failed search is reported
// next to the profile and never replaces it.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input domain.FinancialInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Debug().Err(err).Msg("Error decoding request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profiles.BuildProfile(r.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid inputs", Fields: verr.Fields})
			return
		}
		h.log.Error().Err(err).Msg("Error building profile")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := profileResponse{Profile: profile}

	if enrich, _ := strconv.ParseBool(r.URL.Query().Get("enrich")); enrich && h.funds != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.enrichTimeout)
		defer cancel()

		result, err := h.funds.Search(ctx, profile.FinalRisk, domain.FundSearchOptions{})
		if err != nil {
			resp.FundSearchError = err.Error()
		} else {
			resp.Funds = result.Funds
			resp.FundsCached = result.Cached
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := h.profiles.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.log.Error().Err(err).Str("profile_id", id).Msg("Error loading profile")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Profile: profile})
}
