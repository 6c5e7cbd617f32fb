package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/api"
	"github.com/linesmerrill/court-docket-api/docket"
)

// Hearing exported for testing purposes
type Hearing struct {
	Service *docket.Service
}

// CreateHearingHandler schedules a hearing
func (h Hearing) CreateHearingHandler(w http.ResponseWriter, r *http.Request) {
	var in docket.CreateHearingInput
	if !decodeBody(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hearing, err := h.Service.CreateHearing(ctx, in)
	if err != nil {
		writeError("failed to create hearing", w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hearing)
}

// HearingsHandler returns all hearings
func (h Hearing) HearingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hearings, err := h.Service.ListHearings(ctx)
	if err != nil {
		writeError("failed to get hearings", w, err)
		return
	}
	writeJSON(w, http.StatusOK, hearings)
}

// HearingByIDHandler returns a hearing by ID
func (h Hearing) HearingByIDHandler(w http.ResponseWriter, r *http.Request) {
	hearingID := mux.Vars(r)["hearing_id"]

	zap.S().Debugf("hearing_id: %v", hearingID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hearing, err := h.Service.GetHearing(ctx, hearingID)
	if err != nil {
		writeError("failed to get hearing by ID", w, err)
		return
	}
	writeJSON(w, http.StatusOK, hearing)
}

// JudgeHearingsHandler returns every hearing a judge presides over
func (h Hearing) JudgeHearingsHandler(w http.ResponseWriter, r *http.Request) {
	judgeID := mux.Vars(r)["judge_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hearings, err := h.Service.JudgeHearings(ctx, judgeID)
	if err != nil {
		writeLookupError("failed to get judge hearings", w, err)
		return
	}
	writeJSON(w, http.StatusOK, hearings)
}

// JudgeUpcomingHearingsHandler returns a judge's future hearings, earliest first
func (h Hearing) JudgeUpcomingHearingsHandler(w http.ResponseWriter, r *http.Request) {
	judgeID := mux.Vars(r)["judge_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hearings, err := h.Service.JudgeUpcomingHearings(ctx, judgeID)
	if err != nil {
		writeLookupError("failed to get upcoming hearings", w, err)
		return
	}
	writeJSON(w, http.StatusOK, hearings)
}
