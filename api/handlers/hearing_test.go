package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/court-docket-api/models"
)

func createHearing(t *testing.T, r http.Handler, caseID, judgeID, date string) models.Hearing {
	t.Helper()
	body := `{"caseId":"` + caseID + `","judgeId":"` + judgeID + `","date":"` + date + `","location":"Courtroom 4B"}`
	rr := executeRequest(r, "POST", "/api/v1/hearings", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var h models.Hearing
	decode(t, rr, &h)
	return h
}

func TestHearing_CreateHearingHandler(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	clara := createUser(t, r, "clara", models.RoleCourtStaff)
	c := createCase(t, r, "")

	h := createHearing(t, r, c.ID, judy.ID, "2024-05-02T09:00:00Z")
	assert.Equal(t, c.ID, h.CaseID)
	assert.Equal(t, "Courtroom 4B", h.Location)

	tests := []struct {
		name     string
		body     string
		code     int
		category models.ErrorCategory
	}{
		{"missing", `{"caseId":"` + c.ID + `"}`, http.StatusBadRequest, models.CategoryMissingField},
		{"bad date", `{"caseId":"` + c.ID + `","judgeId":"` + judy.ID + `","date":"tomorrow","location":"4B"}`, http.StatusBadRequest, models.CategoryInvalidFormat},
		{"unknown case", `{"caseId":"nope","judgeId":"` + judy.ID + `","date":"2024-05-02T09:00:00Z","location":"4B"}`, http.StatusNotFound, models.CategoryNotFound},
		{"not a judge", `{"caseId":"` + c.ID + `","judgeId":"` + clara.ID + `","date":"2024-05-02T09:00:00Z","location":"4B"}`, http.StatusBadRequest, models.CategoryRoleMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(r, "POST", "/api/v1/hearings", tt.body)
			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, tt.category, errorBody(t, rr).Category)
		})
	}
}

func TestHearing_HearingsHandler(t *testing.T) {
	r := newRouter(newService())

	rr := executeRequest(r, "GET", "/api/v1/hearings", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	judy := createUser(t, r, "judy", models.RoleJudge)
	c := createCase(t, r, "")
	h := createHearing(t, r, c.ID, judy.ID, "2024-05-02T09:00:00Z")

	rr = executeRequest(r, "GET", "/api/v1/hearings/"+h.ID, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Hearing
	decode(t, rr, &got)
	assert.Equal(t, h, got)

	rr = executeRequest(r, "GET", "/api/v1/hearings/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHearing_JudgeUpcomingHearingsHandler(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	larry := createUser(t, r, "larry", models.RoleLawyer)
	c := createCase(t, r, "")

	t3 := createHearing(t, r, c.ID, judy.ID, "2024-05-04T09:00:00Z")
	createHearing(t, r, c.ID, judy.ID, "2024-04-30T09:00:00Z")
	createHearing(t, r, c.ID, judy.ID, "2024-05-01T12:00:00Z")
	t2 := createHearing(t, r, c.ID, judy.ID, "2024-05-02T09:00:00Z")

	rr := executeRequest(r, "GET", "/api/v1/judges/"+judy.ID+"/hearings/upcoming", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var hearings []models.Hearing
	decode(t, rr, &hearings)
	require.Len(t, hearings, 2)
	assert.Equal(t, t2.ID, hearings[0].ID)
	assert.Equal(t, t3.ID, hearings[1].ID)

	rr = executeRequest(r, "GET", "/api/v1/judges/"+judy.ID+"/hearings", "")
	decode(t, rr, &hearings)
	assert.Len(t, hearings, 4)

	rr = executeRequest(r, "GET", "/api/v1/judges/"+larry.ID+"/hearings/upcoming", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = executeRequest(r, "GET", "/api/v1/judges/"+larry.ID+"/hearings", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = executeRequest(r, "GET", "/api/v1/judges/ghost/hearings/upcoming", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
