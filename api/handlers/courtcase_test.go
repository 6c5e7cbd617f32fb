package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/court-docket-api/models"
)

func TestCourtCase_CreateCourtCaseHandler(t *testing.T) {
	r := newRouter(newService())
	larry := createUser(t, r, "larry", models.RoleLawyer)

	rr := executeRequest(r, "POST", "/api/v1/cases",
		`{"caseNumber":"CV-1","title":"A v. B","description":"tort","lawyerIds":["`+larry.ID+`","bad-id"]}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var res models.CreateCaseResult
	decode(t, rr, &res)
	assert.Equal(t, models.CaseStatusOpen, res.Case.Status)
	assert.Equal(t, []string{larry.ID}, res.Case.LawyerIDs)
	require.Len(t, res.InvalidLawyers, 1)
	assert.Equal(t, models.InvalidReference{Index: 1, Value: "bad-id", Reason: models.ReasonNotFound}, res.InvalidLawyers[0])
}

func TestCourtCase_CreateCourtCaseHandlerRejections(t *testing.T) {
	r := newRouter(newService())
	larry := createUser(t, r, "larry", models.RoleLawyer)

	rr := executeRequest(r, "POST", "/api/v1/cases", `{"title":"A v. B"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing required field(s): caseNumber, description", errorBody(t, rr).Detail)

	rr = executeRequest(r, "POST", "/api/v1/cases",
		`{"caseNumber":"CV-1","title":"A v. B","description":"tort","judgeId":"`+larry.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CategoryRoleMismatch, errorBody(t, rr).Category)

	rr = executeRequest(r, "POST", "/api/v1/cases",
		`{"caseNumber":"CV-1","title":"A v. B","description":"tort","judgeId":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourtCase_CourtCasesHandler(t *testing.T) {
	r := newRouter(newService())

	rr := executeRequest(r, "GET", "/api/v1/cases", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"no cases found"}`, rr.Body.String())

	c := createCase(t, r, "")
	rr = executeRequest(r, "GET", "/api/v1/cases", "")
	var cases []models.CourtCase
	decode(t, rr, &cases)
	require.Len(t, cases, 1)
	assert.Equal(t, c.ID, cases[0].ID)

	rr = executeRequest(r, "GET", "/api/v1/cases/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourtCase_UpdateCourtCaseStatusHandler(t *testing.T) {
	r := newRouter(newService())
	c := createCase(t, r, "")

	rr := executeRequest(r, "PATCH", "/api/v1/cases/"+c.ID+"/status", `{"status":"Under Appeal"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var got models.CourtCase
	decode(t, rr, &got)
	assert.Equal(t, models.CaseStatus("Under Appeal"), got.Status)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, testNow, *got.UpdatedAt)

	rr = executeRequest(r, "PATCH", "/api/v1/cases/"+c.ID+"/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CategoryMissingField, errorBody(t, rr).Category)

	rr = executeRequest(r, "PATCH", "/api/v1/cases/nope/status", `{"status":"Closed"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourtCase_AssignJudgeScenario(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	jack := createUser(t, r, "jack", models.RoleJudge)
	larry := createUser(t, r, "larry", models.RoleLawyer)
	c := createCase(t, r, "")

	rr := executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/judge", `{"judgeId":"`+judy.ID+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var res models.AssignJudgeResult
	decode(t, rr, &res)
	assert.Equal(t, judy.ID, res.Case.JudgeID)
	assert.Equal(t, "judy", res.Judge.Username)

	rr = executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/judge", `{"judgeId":"`+larry.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CategoryRoleMismatch, errorBody(t, rr).Category)

	rr = executeRequest(r, "PATCH", "/api/v1/cases/"+c.ID+"/status", `{"status":"Closed"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/judge", `{"judgeId":"`+jack.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CategoryInvalidState, errorBody(t, rr).Category)

	rr = executeRequest(r, "GET", "/api/v1/cases/"+c.ID, "")
	var got models.CourtCase
	decode(t, rr, &got)
	assert.Equal(t, judy.ID, got.JudgeID)
}

func TestCourtCase_AssignLawyersHandler(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	larry := createUser(t, r, "larry", models.RoleLawyer)
	lucy := createUser(t, r, "lucy", models.RoleLawyer)
	c := createCase(t, r, "")

	rr := executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/lawyers",
		`{"lawyerIds":["`+larry.ID+`","`+lucy.ID+`","`+larry.ID+`"]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var res models.AssignLawyersResult
	decode(t, rr, &res)
	assert.Equal(t, []string{larry.ID, lucy.ID}, res.Case.LawyerIDs)
	assert.Equal(t, 2, res.LawyerCount)
	assert.Len(t, res.Lawyers, 2)

	rr = executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/lawyers",
		`{"lawyerIds":["`+lucy.ID+`","ghost","`+judy.ID+`",7,""]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := errorBody(t, rr)
	assert.Equal(t, models.CategoryMalformedReference, body.Category)
	require.Len(t, body.Invalid, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{body.Invalid[0].Index, body.Invalid[1].Index, body.Invalid[2].Index, body.Invalid[3].Index})
	assert.Equal(t, models.ReasonWrongRole, body.Invalid[1].Reason)
	assert.Equal(t, float64(7), body.Invalid[2].Value)

	rr = executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/lawyers", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CategoryMissingField, errorBody(t, rr).Category)

	rr = executeRequest(r, "GET", "/api/v1/cases/"+c.ID, "")
	var got models.CourtCase
	decode(t, rr, &got)
	assert.Equal(t, []string{larry.ID, lucy.ID}, got.LawyerIDs)
}

func TestCourtCase_AssignHandlersWrongBodyShape(t *testing.T) {
	r := newRouter(newService())
	c := createCase(t, r, "")

	rr := executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/lawyers", `{"lawyerIds":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := errorBody(t, rr)
	assert.Equal(t, "failed to decode request body", body.Message)
	assert.Equal(t, models.CategoryMalformedReference, body.Category)
	assert.Equal(t, "malformed lawyerIds: expected a list of identifiers, got string", body.Detail)

	rr = executeRequest(r, "PUT", "/api/v1/cases/"+c.ID+"/judge", `{"judgeId":5}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body = errorBody(t, rr)
	assert.Equal(t, models.CategoryInvalidFormat, body.Category)
	assert.Contains(t, body.Detail, "invalid body")

	rr = executeRequest(r, "GET", "/api/v1/cases/"+c.ID, "")
	var got models.CourtCase
	decode(t, rr, &got)
	assert.Empty(t, got.JudgeID)
	assert.Empty(t, got.LawyerIDs)
}

func TestCourtCase_JudgeCasesHandler(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	larry := createUser(t, r, "larry", models.RoleLawyer)
	c := createCase(t, r, `,"judgeId":"`+judy.ID+`"`)
	createCase(t, r, `,"judgeId":"`+judy.ID+`","status":"Closed"`)
	createHearing(t, r, c.ID, judy.ID, "2024-05-02T09:00:00Z")

	rr := executeRequest(r, "GET", "/api/v1/judges/"+judy.ID+"/cases", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var load models.JudgeCaseload
	decode(t, rr, &load)
	assert.Equal(t, models.CaseStats{Total: 2, Open: 1, Closed: 1}, load.Stats)
	require.Len(t, load.Cases, 2)
	assert.Len(t, load.Cases[0].Hearings, 1)
	assert.Empty(t, load.Cases[1].Hearings)

	rr = executeRequest(r, "GET", "/api/v1/judges/"+larry.ID+"/cases", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, models.CategoryRoleMismatch, errorBody(t, rr).Category)

	rr = executeRequest(r, "GET", "/api/v1/judges/ghost/cases", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourtCase_LawyerCasesHandler(t *testing.T) {
	r := newRouter(newService())
	judy := createUser(t, r, "judy", models.RoleJudge)
	larry := createUser(t, r, "larry", models.RoleLawyer)
	createCase(t, r, `,"lawyerIds":["`+larry.ID+`"]`)
	createCase(t, r, "")

	rr := executeRequest(r, "GET", "/api/v1/lawyers/"+larry.ID+"/cases", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var load models.LawyerCaseload
	decode(t, rr, &load)
	assert.Equal(t, 1, load.TotalCases)
	assert.Equal(t, "larry", load.Lawyer.Username)

	rr = executeRequest(r, "GET", "/api/v1/lawyers/"+judy.ID+"/cases", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
