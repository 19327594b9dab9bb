package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Credential secret
	// required: true
	// default: secret123
	Secret string `json:"secret"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Email
	// default: john@example.com
	Email string `json:"email"`
}

// UserStatRequest represents the JSON body for a usage aggregate report
// swagger:model UserStatRequest
type UserStatRequest struct {
	// Number of owned databases
	// required: true
	// default: 2
	NDatabases int64 `json:"n_databases"`

	// Total bytes used
	// required: true
	// default: 1048576
	NBytes int64 `json:"n_bytes"`

	// When the aggregate was measured, defaults to now
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a user together with its default quota and an empty stat record.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Username, req.Secret, req.Name, req.Email)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler for user lookup.
// @Summary Get a user
// @Description Looks a user up by id or username. A numeric reference is tried as an id first.
// @Tags users
// @Produce json
// @Param ref path string true "User id or username"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{ref} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUser(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetAccountHandler returns an HTTP handler for the account view of a user.
// @Summary Get a user account
// @Description Returns a user with its quota, stat and owned databases.
// @Tags users
// @Produce json
// @Param ref path string true "User id or username"
// @Success 200 {object} models.Account "Account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{ref}/account [get]
// @Security BearerAuth
func NewGetAccountHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := svc.GetAccount(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}

// NewSetUserQuotaHandler returns an HTTP handler that overwrites a user quota.
// @Summary Set a user quota
// @Description Overwrites the byte ceilings and, optionally, the database limit of a user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param quotaRequest body handlers.QuotaRequest true "Quota"
// @Success 200 {object} models.UserQuota "Stored quota"
// @Failure 400 {object} handlers.ErrorResponse "Invalid quota"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/quota [put]
// @Security BearerAuth
func NewSetUserQuotaHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid user id")
			return
		}

		var req QuotaRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		ctx := r.Context()
		if err := svc.SetUserQuota(ctx, userID, req.NBytesSoft, req.NBytesHard, req.NDatabasesHard); err != nil {
			writeError(w, err)
			return
		}

		quota, err := svc.GetUserQuota(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, quota)
	}
}

// NewUpdateUserStatHandler returns an HTTP handler that records user aggregates.
// @Summary Report user aggregates
// @Description Overwrites the cached database count and byte total of a user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param userStatRequest body handlers.UserStatRequest true "Aggregates"
// @Success 200 {object} models.UserStat "Stored aggregates"
// @Failure 400 {object} handlers.ErrorResponse "Invalid usage"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/stat [put]
// @Security BearerAuth
func NewUpdateUserStatHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid user id")
			return
		}

		var req UserStatRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		checkedAt := nowFunc()
		if req.CheckedAt != nil {
			checkedAt = *req.CheckedAt
		}

		ctx := r.Context()
		if err := svc.UpdateUserStat(ctx, userID, req.NDatabases, req.NBytes, checkedAt); err != nil {
			writeError(w, err)
			return
		}

		stat, err := svc.GetUserStat(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stat)
	}
}

// NewSetUserEnabledHandler returns an HTTP handler that enables or disables a user.
// @Summary Enable or disable a user
// @Tags users
// @Accept json
// @Param id path int true "User id"
// @Param enabledRequest body handlers.EnabledRequest true "Enabled flag"
// @Success 204 "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/enabled [put]
// @Security BearerAuth
func NewSetUserEnabledHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid user id")
			return
		}

		var req EnabledRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		if err := svc.SetUserEnabled(r.Context(), userID, req.Enabled); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteUserHandler returns an HTTP handler for user removal.
// @Summary Delete a user
// @Description Deletes a user with its quota, stat and ownership links. Owned databases are kept.
// @Tags users
// @Param id path int true "User id"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid user id")
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
