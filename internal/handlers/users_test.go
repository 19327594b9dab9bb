package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/quota-ledger/internal/models"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockUserLedger)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"username":"john","secret":"s3cret","name":"John","email":"john@example.com"}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().
					CreateUser(gomock.Any(), "john", "s3cret", "John", "john@example.com").
					Return(&models.User{UserID: 1, Username: "john", Password: "$2a$hash", BEnabled: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: `{"username":"john","secret":"s3cret"}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().
					CreateUser(gomock.Any(), "john", "s3cret", "", "").
					Return(nil, models.ErrDuplicateKey)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Already exists",
		},
		{
			name: "internal server error",
			body: `{"username":"bob","secret":"pass"}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().
					CreateUser(gomock.Any(), "bob", "pass", "", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          `{"username":`,
			mockSetup:     func(m *MockUserLedger) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "unknown field",
			body:          `{"username":"john","password":"x"}`,
			mockSetup:     func(m *MockUserLedger) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserLedger(ctrl)
			tt.mockSetup(m)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewCreateUserHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
				return
			}

			assert.NotContains(t, rec.Body.String(), "$2a$hash")
			var user models.User
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
			assert.Equal(t, int64(1), user.UserID)
			assert.Equal(t, "john", user.Username)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		ref          string
		mockSetup    func(m *MockUserLedger)
		expectedCode int
	}{
		{
			name: "by username",
			ref:  "john",
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().GetUser(gomock.Any(), "john").Return(&models.User{UserID: 3, Username: "john"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			ref:  "17",
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().GetUser(gomock.Any(), "17").Return(nil, models.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserLedger(ctrl)
			tt.mockSetup(m)

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tt.ref, nil), map[string]string{"ref": tt.ref})
			rec := httptest.NewRecorder()

			NewGetUserHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserLedger(ctrl)
	m.EXPECT().GetAccount(gomock.Any(), "john").Return(&models.Account{
		User:  models.User{UserID: 3, Username: "john"},
		Quota: models.UserQuota{UserID: 3, NDatabasesHard: 20, NBytesSoft: 10, NBytesHard: 20},
		Databases: []models.Database{
			{DatabaseID: 9, Name: "john+blog"},
		},
	}, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/john/account", nil), map[string]string{"ref": "john"})
	rec := httptest.NewRecorder()

	NewGetAccountHandler(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var account models.Account
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&account))
	assert.Equal(t, int64(20), account.Quota.NBytesHard)
	require.Len(t, account.Databases, 1)
	assert.Equal(t, "john+blog", account.Databases[0].Name)
}

func TestSetUserQuotaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	databaseLimit := int64(5)
	negativeLimit := int64(-1)

	tests := []struct {
		name          string
		id            string
		body          string
		mockSetup     func(m *MockUserLedger)
		expectedCode  int
		expectedError string
	}{
		{
			name: "bytes only",
			id:   "3",
			body: `{"n_bytes_soft":10,"n_bytes_hard":20}`,
			mockSetup: func(m *MockUserLedger) {
				gomock.InOrder(
					m.EXPECT().SetUserQuota(gomock.Any(), int64(3), int64(10), int64(20), gomock.Nil()).Return(nil),
					m.EXPECT().GetUserQuota(gomock.Any(), int64(3)).Return(&models.UserQuota{UserID: 3, NBytesSoft: 10, NBytesHard: 20}, nil),
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "with database limit",
			id:   "3",
			body: `{"n_bytes_soft":10,"n_bytes_hard":20,"n_databases_hard":5}`,
			mockSetup: func(m *MockUserLedger) {
				gomock.InOrder(
					m.EXPECT().SetUserQuota(gomock.Any(), int64(3), int64(10), int64(20), &databaseLimit).Return(nil),
					m.EXPECT().GetUserQuota(gomock.Any(), int64(3)).Return(&models.UserQuota{UserID: 3, NDatabasesHard: 5}, nil),
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "soft above hard",
			id:   "3",
			body: `{"n_bytes_soft":100,"n_bytes_hard":50}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().SetUserQuota(gomock.Any(), int64(3), int64(100), int64(50), gomock.Nil()).Return(models.ErrInvalidQuota)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "negative database limit",
			id:   "3",
			body: `{"n_bytes_soft":1,"n_bytes_hard":2,"n_databases_hard":-1}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().SetUserQuota(gomock.Any(), int64(3), int64(1), int64(2), &negativeLimit).Return(models.ErrInvalidQuota)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing user",
			id:   "99",
			body: `{"n_bytes_soft":1,"n_bytes_hard":2}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().SetUserQuota(gomock.Any(), int64(99), int64(1), int64(2), gomock.Nil()).Return(models.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "invalid id",
			id:            "john",
			body:          `{}`,
			mockSetup:     func(m *MockUserLedger) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserLedger(ctrl)
			tt.mockSetup(m)

			req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/v1/users/"+tt.id+"/quota", strings.NewReader(tt.body)), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			NewSetUserQuotaHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
			}
		})
	}
}

func TestUpdateUserStatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)

	oldNow := nowFunc
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = oldNow }()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserLedger)
		expectedCode int
	}{
		{
			name: "explicit check time",
			body: `{"n_databases":2,"n_bytes":4096,"checked_at":"2024-03-01T12:00:00Z"}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().UpdateUserStat(gomock.Any(), int64(3), int64(2), int64(4096), checkedAt).Return(nil)
				m.EXPECT().GetUserStat(gomock.Any(), int64(3)).Return(&models.UserStat{UserID: 3, NDatabases: 2, NBytes: 4096, DLastCheck: checkedAt}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "defaults to now",
			body: `{"n_databases":1,"n_bytes":1}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().UpdateUserStat(gomock.Any(), int64(3), int64(1), int64(1), now).Return(nil)
				m.EXPECT().GetUserStat(gomock.Any(), int64(3)).Return(&models.UserStat{UserID: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "negative usage",
			body: `{"n_databases":-1,"n_bytes":1}`,
			mockSetup: func(m *MockUserLedger) {
				m.EXPECT().UpdateUserStat(gomock.Any(), int64(3), int64(-1), int64(1), now).Return(models.ErrInvalidUsage)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserLedger(ctrl)
			tt.mockSetup(m)

			req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/v1/users/3/stat", strings.NewReader(tt.body)), map[string]string{"id": "3"})
			rec := httptest.NewRecorder()

			NewUpdateUserStatHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestSetUserEnabledHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserLedger(ctrl)
	m.EXPECT().SetUserEnabled(gomock.Any(), int64(3), false).Return(nil)

	req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/v1/users/3/enabled", strings.NewReader(`{"enabled":false}`)), map[string]string{"id": "3"})
	rec := httptest.NewRecorder()

	NewSetUserEnabledHandler(m).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", models.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserLedger(ctrl)
			m.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(tt.err)

			req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/users/3", nil), map[string]string{"id": "3"})
			rec := httptest.NewRecorder()

			NewDeleteUserHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
