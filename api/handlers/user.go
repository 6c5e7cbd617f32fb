package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/court-docket-api/api"
	"github.com/linesmerrill/court-docket-api/docket"
)

// User exported for testing purposes
type User struct {
	Service *docket.Service
}

// CreateUserHandler creates a user account
func (u User) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var in docket.CreateUserInput
	if !decodeBody(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.Service.CreateUser(ctx, in)
	if err != nil {
		writeError("failed to create user", w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// UsersHandler returns all users
func (u User) UsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := u.Service.ListUsers(ctx)
	if err != nil {
		writeError("failed to get users", w, err)
		return
	}
	if len(users) == 0 {
		writeJSON(w, http.StatusOK, emptyNotice{Message: "no users found"})
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// UserByIDHandler returns a user by ID
func (u User) UserByIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: %v", userID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.Service.GetUser(ctx, userID)
	if err != nil {
		writeError("failed to get user by ID", w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUserHandler applies a partial update to a user
func (u User) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var in docket.UpdateUserInput
	if !decodeBody(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.Service.UpdateUser(ctx, userID, in)
	if err != nil {
		writeError("failed to update user", w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUserHandler deletes a user. Cases and hearings that reference the
// user are left as they are.
func (u User) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := u.Service.DeleteUser(ctx, userID); err != nil {
		writeError("failed to delete user", w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted", "id": userID})
}
