package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/api"
	"github.com/linesmerrill/court-docket-api/config"
	"github.com/linesmerrill/court-docket-api/databases"
	"github.com/linesmerrill/court-docket-api/docket"
	"github.com/linesmerrill/court-docket-api/models"
	"github.com/linesmerrill/court-docket-api/validation"
)

// App stores the router and docket service, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	Service *docket.Service
	closers []func() error
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	u := User{Service: a.Service}
	c := CourtCase{Service: a.Service}
	h := Hearing{Service: a.Service}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.Handle("/metrics", api.MetricsHandler()).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.Middleware)

	apiCreate.HandleFunc("/users", u.CreateUserHandler).Methods("POST")
	apiCreate.HandleFunc("/users", u.UsersHandler).Methods("GET")
	apiCreate.HandleFunc("/users/{user_id}", u.UserByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/users/{user_id}", u.UpdateUserHandler).Methods("PATCH", "PUT")
	apiCreate.HandleFunc("/users/{user_id}", u.DeleteUserHandler).Methods("DELETE")

	apiCreate.HandleFunc("/cases", c.CreateCourtCaseHandler).Methods("POST")
	apiCreate.HandleFunc("/cases", c.CourtCasesHandler).Methods("GET")
	apiCreate.HandleFunc("/cases/{case_id}", c.CourtCaseByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/cases/{case_id}/status", c.UpdateCourtCaseStatusHandler).Methods("PATCH")
	apiCreate.HandleFunc("/cases/{case_id}/judge", c.AssignJudgeHandler).Methods("PUT")
	apiCreate.HandleFunc("/cases/{case_id}/lawyers", c.AssignLawyersHandler).Methods("PUT")

	apiCreate.HandleFunc("/judges/{judge_id}/cases", c.JudgeCasesHandler).Methods("GET")
	apiCreate.HandleFunc("/lawyers/{lawyer_id}/cases", c.LawyerCasesHandler).Methods("GET")
	apiCreate.HandleFunc("/judges/{judge_id}/hearings", h.JudgeHearingsHandler).Methods("GET")
	apiCreate.HandleFunc("/judges/{judge_id}/hearings/upcoming", h.JudgeUpcomingHearingsHandler).Methods("GET")

	apiCreate.HandleFunc("/hearings", h.CreateHearingHandler).Methods("POST")
	apiCreate.HandleFunc("/hearings", h.HearingsHandler).Methods("GET")
	apiCreate.HandleFunc("/hearings/{hearing_id}", h.HearingByIDHandler).Methods("GET")

	return r
}

// Initialize is invoked by main to open the configured store and create a router
func (a *App) Initialize() error {
	if a.Config.QueryTimeout > 0 {
		api.QueryTimeout = a.Config.QueryTimeout
	}

	users, cases, hearings, err := a.openStores()
	if err != nil {
		// if we fail to open the store, then kill the pod
		zap.S().Errorw("failed to open store", "driver", a.Config.StoreDriver, "error", err)
		return err
	}
	zap.S().Infow("court-docket-api has opened its store", "driver", a.Config.StoreDriver)

	a.Service = docket.NewService(users, cases, hearings)
	a.Service.Hasher = validation.NewHasher(a.Config.PasswordScheme)

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) openStores() (databases.UserDatabase, databases.CourtCaseDatabase, databases.HearingDatabase, error) {
	switch a.Config.StoreDriver {
	case config.StoreMongo:
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create mongo client: %w", err)
		}
		ctx, cancel := api.WithQueryTimeout(context.Background())
		defer cancel()
		if err := client.Connect(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("connect to mongo: %w", err)
		}
		a.closers = append(a.closers, func() error { return client.Disconnect(context.Background()) })
		db := databases.NewDatabase(&a.Config, client)
		return databases.NewUserDatabase(db), databases.NewCourtCaseDatabase(db), databases.NewHearingDatabase(db), nil
	case config.StoreSQLite:
		s, err := databases.OpenSQLite(a.Config.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		a.closers = append(a.closers, s.Close)
		return databases.NewSQLiteUserDatabase(s), databases.NewSQLiteCourtCaseDatabase(s), databases.NewSQLiteHearingDatabase(s), nil
	case config.StoreMemory, "":
		return databases.NewMemoryUserDatabase(), databases.NewMemoryCourtCaseDatabase(), databases.NewMemoryHearingDatabase(), nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", a.Config.StoreDriver)
	}
}

// Close releases the store opened by Initialize
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
