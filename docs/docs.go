// Package docs Court Docket API.
//
// Documentation of the Court Docket API: users, cases and hearings with
// role and reference checks between them.
//
//     Schemes: http, https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/court-docket-api/docket"
	"github.com/linesmerrill/court-docket-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// Error body returned by every failed request. category is one of
// MissingField, InvalidFormat, WeakPassword, DuplicateUnique, NotFound,
// RoleMismatch, InvalidState, MalformedReference or InternalFault.
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}

// swagger:route POST /api/v1/users users createUser
// Creates a user account. The password must be at least 8 characters with
// an upper case letter, a lower case letter, a digit and a special character.
// responses:
//   201: userResponse
//   400: errorResponse

// swagger:parameters createUser
type createUserParamsWrapper struct {
	// in:body
	Body docket.CreateUserInput
}

// swagger:route GET /api/v1/users/{user_id} users userByID
// Gets a single user by ID.
// responses:
//   200: userResponse
//   404: errorResponse

// swagger:route PATCH /api/v1/users/{user_id} users updateUser
// Updates any subset of username, email, password and role.
// responses:
//   200: userResponse
//   400: errorResponse
//   404: errorResponse

// swagger:route DELETE /api/v1/users/{user_id} users deleteUser
// Deletes a user. Cases and hearings that reference the user are kept.
// responses:
//   200: deletedResponse
//   404: errorResponse

// Confirms the deleted id.
// swagger:response deletedResponse
type deletedResponseWrapper struct {
	// in:body
	Body struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
}

// A user account. The password is never returned.
// swagger:response userResponse
type userResponseWrapper struct {
	// in:body
	Body models.User
}

// swagger:route GET /api/v1/users users users
// Lists every user, or a message when there are none.
// responses:
//   200: usersResponse

// swagger:response usersResponse
type usersResponseWrapper struct {
	// in:body
	Body []models.User
}

// swagger:route POST /api/v1/cases cases createCase
// Opens a case. Lawyer ids that do not resolve to a Lawyer are dropped and
// listed in invalidLawyers.
// responses:
//   201: createCaseResponse
//   400: errorResponse
//   404: errorResponse

// swagger:parameters createCase
type createCaseParamsWrapper struct {
	// in:body
	Body docket.CreateCaseInput
}

// swagger:response createCaseResponse
type createCaseResponseWrapper struct {
	// in:body
	Body models.CreateCaseResult
}

// swagger:route GET /api/v1/cases cases courtCases
// Lists every case, or a message when there are none.
// responses:
//   200: casesResponse

// swagger:response casesResponse
type casesResponseWrapper struct {
	// in:body
	Body []models.CourtCase
}

// swagger:route GET /api/v1/cases/{case_id} cases courtCaseByID
// Gets a single case by ID.
// responses:
//   200: caseResponse
//   404: errorResponse

// swagger:route PATCH /api/v1/cases/{case_id}/status cases updateCaseStatus
// Overwrites the status of a case. "Closed" blocks later judge and lawyer changes.
// responses:
//   200: caseResponse
//   400: errorResponse
//   404: errorResponse

// swagger:response caseResponse
type caseResponseWrapper struct {
	// in:body
	Body models.CourtCase
}

// swagger:route PUT /api/v1/cases/{case_id}/judge cases assignJudge
// Sets the judge of a case that is not Closed.
// responses:
//   200: assignJudgeResponse
//   400: errorResponse
//   404: errorResponse

// swagger:response assignJudgeResponse
type assignJudgeResponseWrapper struct {
	// in:body
	Body models.AssignJudgeResult
}

// swagger:route PUT /api/v1/cases/{case_id}/lawyers cases assignLawyers
// Replaces the lawyers of a case that is not Closed. Any invalid id rejects
// the whole list and every invalid entry is reported.
// responses:
//   200: assignLawyersResponse
//   400: errorResponse
//   404: errorResponse

// swagger:response assignLawyersResponse
type assignLawyersResponseWrapper struct {
	// in:body
	Body models.AssignLawyersResult
}

// swagger:route GET /api/v1/judges/{judge_id}/cases judges judgeCases
// Gets a judge's cases with their hearings and open/closed counts.
// responses:
//   200: judgeCaseloadResponse
//   403: errorResponse
//   404: errorResponse

// swagger:response judgeCaseloadResponse
type judgeCaseloadResponseWrapper struct {
	// in:body
	Body models.JudgeCaseload
}

// swagger:route GET /api/v1/lawyers/{lawyer_id}/cases lawyers lawyerCases
// Gets the cases a lawyer is assigned to.
// responses:
//   200: lawyerCaseloadResponse
//   403: errorResponse
//   404: errorResponse

// swagger:response lawyerCaseloadResponse
type lawyerCaseloadResponseWrapper struct {
	// in:body
	Body models.LawyerCaseload
}

// swagger:route POST /api/v1/hearings hearings createHearing
// Schedules a hearing. date is RFC 3339 and judgeId must hold the Judge role.
// responses:
//   201: hearingResponse
//   400: errorResponse
//   404: errorResponse

// swagger:parameters createHearing
type createHearingParamsWrapper struct {
	// in:body
	Body docket.CreateHearingInput
}

// swagger:route GET /api/v1/hearings/{hearing_id} hearings hearingByID
// Gets a single hearing by ID.
// responses:
//   200: hearingResponse
//   404: errorResponse

// swagger:response hearingResponse
type hearingResponseWrapper struct {
	// in:body
	Body models.Hearing
}

// swagger:route GET /api/v1/hearings hearings hearings
// Lists every hearing.
// responses:
//   200: hearingsResponse

// swagger:route GET /api/v1/judges/{judge_id}/hearings judges judgeHearings
// Lists every hearing a judge presides over.
// responses:
//   200: hearingsResponse
//   403: errorResponse
//   404: errorResponse

// swagger:route GET /api/v1/judges/{judge_id}/hearings/upcoming judges judgeUpcomingHearings
// Lists a judge's hearings after the current time, earliest first.
// responses:
//   200: hearingsResponse
//   403: errorResponse
//   404: errorResponse

// swagger:response hearingsResponse
type hearingsResponseWrapper struct {
	// in:body
	Body []models.Hearing
}
