package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/quota-ledger/internal/models"
)

// CreateDatabaseRequest represents the JSON body for database creation
// swagger:model CreateDatabaseRequest
type CreateDatabaseRequest struct {
	// Database name
	// required: true
	// default: john_doe+blog
	Name string `json:"name"`
}

// AssignOwnerRequest represents the JSON body for assigning a database owner
// swagger:model AssignOwnerRequest
type AssignOwnerRequest struct {
	// Owning user id
	// required: true
	// default: 1
	UserID int64 `json:"user_id"`

	// Optional group id
	GroupID *int64 `json:"group_id,omitempty"`
}

// UsageRequest represents the JSON body for a database size report
// swagger:model UsageRequest
type UsageRequest struct {
	// Measured size in bytes
	// required: true
	// default: 1048576
	NBytes int64 `json:"n_bytes"`

	// When the size was measured, defaults to now
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// NewCreateDatabaseHandler returns an HTTP handler for database creation.
// @Summary Create a database
// @Description Creates a database record together with an all-zero quota.
// @Tags databases
// @Accept json
// @Produce json
// @Param createDatabaseRequest body handlers.CreateDatabaseRequest true "Database creation request"
// @Success 201 {object} models.Database "Database created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Name already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /databases [post]
// @Security BearerAuth
func NewCreateDatabaseHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDatabaseRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		database, err := svc.CreateDatabase(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, database)
	}
}

// NewGetDatabaseHandler returns an HTTP handler for database lookup.
// @Summary Get a database
// @Description Looks a database up by id or name. A numeric reference is tried as an id first.
// @Tags databases
// @Produce json
// @Param ref path string true "Database id or name"
// @Success 200 {object} models.Database "Database"
// @Failure 404 {object} handlers.ErrorResponse "Database not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /databases/{ref} [get]
// @Security BearerAuth
func NewGetDatabaseHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database, err := svc.GetDatabase(r.Context(), chi.URLParam(r, "ref"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, database)
	}
}

// NewAssignOwnerHandler returns an HTTP handler that links a database to its owner.
// @Summary Assign a database owner
// @Tags databases
// @Accept json
// @Produce json
// @Param id path int true "Database id"
// @Param assignOwnerRequest body handlers.AssignOwnerRequest true "Owner"
// @Success 200 {object} models.DBOwner "Ownership link"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User or database not found"
// @Failure 409 {object} handlers.ErrorResponse "Database already has an owner"
// @Router /databases/{id}/owner [put]
// @Security BearerAuth
func NewAssignOwnerHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		databaseID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid database id")
			return
		}

		var req AssignOwnerRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		owner, err := svc.AssignOwner(r.Context(), req.UserID, databaseID, req.GroupID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, owner)
	}
}

// NewSetDatabaseQuotaHandler returns an HTTP handler that overwrites a database quota.
// @Summary Set a database quota
// @Tags databases
// @Accept json
// @Produce json
// @Param id path int true "Database id"
// @Param quotaRequest body handlers.QuotaRequest true "Quota"
// @Success 200 {object} models.DBQuota "Stored quota"
// @Failure 400 {object} handlers.ErrorResponse "Invalid quota"
// @Failure 404 {object} handlers.ErrorResponse "Database not found"
// @Router /databases/{id}/quota [put]
// @Security BearerAuth
func NewSetDatabaseQuotaHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		databaseID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid database id")
			return
		}

		var req QuotaRequest
		if err := decode(r, &req); err != nil || req.NDatabasesHard != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		ctx := r.Context()
		if err := svc.SetQuota(ctx, models.DatabaseTarget(databaseID), req.NBytesSoft, req.NBytesHard); err != nil {
			writeError(w, err)
			return
		}

		quota, err := svc.GetDatabaseQuota(ctx, databaseID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, quota)
	}
}

// NewUpdateUsageHandler returns an HTTP handler that records the size of a database.
// @Summary Report database usage
// @Tags databases
// @Accept json
// @Param id path int true "Database id"
// @Param usageRequest body handlers.UsageRequest true "Usage"
// @Success 204 "Recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid usage"
// @Failure 404 {object} handlers.ErrorResponse "Database not found"
// @Router /databases/{id}/usage [put]
// @Security BearerAuth
func NewUpdateUsageHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		databaseID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid database id")
			return
		}

		var req UsageRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		checkedAt := nowFunc()
		if req.CheckedAt != nil {
			checkedAt = *req.CheckedAt
		}

		if err := svc.UpdateUsage(r.Context(), databaseID, req.NBytes, checkedAt); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSetDatabaseEnabledHandler returns an HTTP handler that enables or disables a database.
// @Summary Enable or disable a database
// @Tags databases
// @Accept json
// @Param id path int true "Database id"
// @Param enabledRequest body handlers.EnabledRequest true "Enabled flag"
// @Success 204 "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Database not found"
// @Router /databases/{id}/enabled [put]
// @Security BearerAuth
func NewSetDatabaseEnabledHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		databaseID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid database id")
			return
		}

		var req EnabledRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		if err := svc.SetDatabaseEnabled(r.Context(), databaseID, req.Enabled); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteDatabaseHandler returns an HTTP handler for database removal.
// @Summary Delete a database
// @Description Deletes a database with its quota and ownership link.
// @Tags databases
// @Param id path int true "Database id"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid database id"
// @Failure 404 {object} handlers.ErrorResponse "Database not found"
// @Router /databases/{id} [delete]
// @Security BearerAuth
func NewDeleteDatabaseHandler(svc DatabaseLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		databaseID, ok := idParam(r)
		if !ok {
			writeBadRequest(w, "Invalid database id")
			return
		}

		if err := svc.DeleteDatabase(r.Context(), databaseID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
