package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/models"
)

//go:generate mockgen -destination=mock_handlers.go -package=handlers github.com/sbilibin2017/quota-ledger/internal/handlers UserLedger,DatabaseLedger

// UserLedger defines the user operations the handlers call.
type UserLedger interface {
	CreateUser(ctx context.Context, username, secret, name, email string) (*models.User, error)
	GetUser(ctx context.Context, idOrUsername string) (*models.User, error)
	GetAccount(ctx context.Context, idOrUsername string) (*models.Account, error)
	GetUserQuota(ctx context.Context, userID int64) (*models.UserQuota, error)
	GetUserStat(ctx context.Context, userID int64) (*models.UserStat, error)
	SetUserQuota(ctx context.Context, userID, soft, hard int64, nDatabasesHard *int64) error
	UpdateUserStat(ctx context.Context, userID, nDatabases, nBytes int64, checkedAt time.Time) error
	SetUserEnabled(ctx context.Context, userID int64, enabled bool) error
	DeleteUser(ctx context.Context, userID int64) error
}

// DatabaseLedger defines the database operations the handlers call.
type DatabaseLedger interface {
	CreateDatabase(ctx context.Context, name string) (*models.Database, error)
	GetDatabase(ctx context.Context, idOrName string) (*models.Database, error)
	GetDatabaseQuota(ctx context.Context, databaseID int64) (*models.DBQuota, error)
	AssignOwner(ctx context.Context, userID, databaseID int64, groupID *int64) (*models.DBOwner, error)
	SetQuota(ctx context.Context, target models.QuotaTarget, soft, hard int64) error
	UpdateUsage(ctx context.Context, databaseID, nBytes int64, checkedAt time.Time) error
	SetDatabaseEnabled(ctx context.Context, databaseID int64, enabled bool) error
	DeleteDatabase(ctx context.Context, databaseID int64) error
}

// ErrorResponse represents an error returned by the admin API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`
}

// QuotaRequest represents the JSON body for setting byte ceilings
// swagger:model QuotaRequest
type QuotaRequest struct {
	// Soft byte ceiling
	// required: true
	// default: 94371840
	NBytesSoft int64 `json:"n_bytes_soft"`

	// Hard byte ceiling
	// required: true
	// default: 104857600
	NBytesHard int64 `json:"n_bytes_hard"`

	// Maximum number of owned databases, users only
	// default: 20
	NDatabasesHard *int64 `json:"n_databases_hard,omitempty"`
}

// EnabledRequest represents the JSON body for enabling or disabling a record
// swagger:model EnabledRequest
type EnabledRequest struct {
	// Enabled flag
	// required: true
	// default: true
	Enabled bool `json:"enabled"`
}

// nowFunc stamps usage reports that carry no check time.
var nowFunc = func() time.Time { return time.Now().UTC() }

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a ledger error to its HTTP status and writes it.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, models.ErrDuplicateKey):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Already exists"})
	case errors.Is(err, models.ErrAlreadyOwned):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Database already has an owner"})
	case errors.Is(err, models.ErrInvalidQuota),
		errors.Is(err, models.ErrInvalidUsage),
		errors.Is(err, models.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrConstraintViolation):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "Constraint violation"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// writeBadRequest rejects a malformed request.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// idParam parses the numeric {id} URL parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decode reads the JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
