package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/court-docket-api/api/handlers"
	"github.com/linesmerrill/court-docket-api/databases"
	"github.com/linesmerrill/court-docket-api/docket"
	"github.com/linesmerrill/court-docket-api/models"
	"github.com/linesmerrill/court-docket-api/validation"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newService() *docket.Service {
	s := docket.NewService(
		databases.NewMemoryUserDatabase(),
		databases.NewMemoryCourtCaseDatabase(),
		databases.NewMemoryHearingDatabase(),
	)
	s.Clock = docket.FixedClock(testNow)
	s.Hasher = validation.BcryptHasher{Cost: bcrypt.MinCost}
	return s
}

func newRouter(s *docket.Service) *mux.Router {
	a := handlers.App{Service: s}
	return a.New()
}

func executeRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) models.MessageError {
	t.Helper()
	var resp models.ErrorMessageResponse
	decode(t, rr, &resp)
	return resp.Response
}

func createUser(t *testing.T, r http.Handler, name string, role models.Role) models.User {
	t.Helper()
	body := `{"username":"` + name + `","email":"` + name + `@court.gov","password":"Secur3P@ss","role":"` + string(role) + `"}`
	rr := executeRequest(r, "POST", "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var u models.User
	decode(t, rr, &u)
	return u
}

func createCase(t *testing.T, r http.Handler, extra string) models.CourtCase {
	t.Helper()
	body := `{"caseNumber":"CV-2024-001","title":"Smith v. Jones","description":"contract dispute"` + extra + `}`
	rr := executeRequest(r, "POST", "/api/v1/cases", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var res models.CreateCaseResult
	decode(t, rr, &res)
	return *res.Case
}
