package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/api"
	"github.com/linesmerrill/court-docket-api/docket"
	"github.com/linesmerrill/court-docket-api/models"
)

// CourtCase exported for testing purposes
type CourtCase struct {
	Service *docket.Service
}

type statusRequest struct {
	Status models.CaseStatus `json:"status"`
}

type judgeRequest struct {
	JudgeID string `json:"judgeId"`
}

type lawyersRequest struct {
	LawyerIDs []interface{} `json:"lawyerIds"`
}

// CreateCourtCaseHandler opens a new case
func (cc CourtCase) CreateCourtCaseHandler(w http.ResponseWriter, r *http.Request) {
	var in docket.CreateCaseInput
	if !decodeBody(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := cc.Service.CreateCase(ctx, in)
	if err != nil {
		writeError("failed to create court case", w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// CourtCasesHandler returns all cases
func (cc CourtCase) CourtCasesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := cc.Service.ListCases(ctx)
	if err != nil {
		writeError("failed to get court cases", w, err)
		return
	}
	if len(cases) == 0 {
		writeJSON(w, http.StatusOK, emptyNotice{Message: "no cases found"})
		return
	}
	writeJSON(w, http.StatusOK, cases)
}

// CourtCaseByIDHandler returns a case by ID
func (cc CourtCase) CourtCaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := cc.Service.GetCase(ctx, caseID)
	if err != nil {
		writeError("failed to get court case by ID", w, err)
		return
	}
	writeJSON(w, http.StatusOK, courtCase)
}

// UpdateCourtCaseStatusHandler overwrites the status of a case
func (cc CourtCase) UpdateCourtCaseStatusHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var body statusRequest
	if !decodeBody(w, r, &body) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := cc.Service.UpdateCaseStatus(ctx, caseID, body.Status)
	if err != nil {
		writeError("failed to update court case status", w, err)
		return
	}
	writeJSON(w, http.StatusOK, courtCase)
}

// AssignJudgeHandler sets the presiding judge of an open case
func (cc CourtCase) AssignJudgeHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var body judgeRequest
	if !decodeBody(w, r, &body) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := cc.Service.AssignJudge(ctx, caseID, body.JudgeID)
	if err != nil {
		writeError("failed to assign judge", w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// AssignLawyersHandler replaces the lawyers of an open case. One bad id
// rejects the whole list.
func (cc CourtCase) AssignLawyersHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	var body lawyersRequest
	if !decodeBody(w, r, &body) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := cc.Service.AssignLawyers(ctx, caseID, body.LawyerIDs)
	if err != nil {
		writeError("failed to assign lawyers", w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// JudgeCasesHandler returns a judge's caseload with nested hearings
func (cc CourtCase) JudgeCasesHandler(w http.ResponseWriter, r *http.Request) {
	judgeID := mux.Vars(r)["judge_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseload, err := cc.Service.JudgeCases(ctx, judgeID)
	if err != nil {
		writeLookupError("failed to get judge cases", w, err)
		return
	}
	writeJSON(w, http.StatusOK, caseload)
}

// LawyerCasesHandler returns the cases a lawyer is assigned to
func (cc CourtCase) LawyerCasesHandler(w http.ResponseWriter, r *http.Request) {
	lawyerID := mux.Vars(r)["lawyer_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseload, err := cc.Service.LawyerCases(ctx, lawyerID)
	if err != nil {
		writeLookupError("failed to get lawyer cases", w, err)
		return
	}
	writeJSON(w, http.StatusOK, caseload)
}
