package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/buyback-be/internal/handlers"
	"github.com/ammerola/buyback-be/test/helpers"
	"github.com/ammerola/buyback-be/test/mocks"
)

type fakeSchema struct {
	version uint
	dirty   bool
	err     error
}

func (f fakeSchema) Version(context.Context) (uint, bool, error) {
	return f.version, f.dirty, f.err
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		schema         fakeSchema
		expectedStatus int
		expectedSchema string
	}{
		{
			name:           "ready_when_migrated",
			schema:         fakeSchema{version: 1},
			expectedStatus: http.StatusOK,
			expectedSchema: "ready",
		},
		{
			name:           "dirty_schema_not_ready",
			schema:         fakeSchema{version: 1, dirty: true},
			expectedStatus: http.StatusServiceUnavailable,
			expectedSchema: "not migrated",
		},
		{
			name:           "missing_schema_not_ready",
			schema:         fakeSchema{},
			expectedStatus: http.StatusServiceUnavailable,
			expectedSchema: "not migrated",
		},
		{
			name:           "database_down",
			dbErr:          errors.New("connection refused"),
			schema:         fakeSchema{err: errors.New("connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedSchema: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			database := mocks.NewMockDatabase(ctrl)
			database.EXPECT().Ping(gomock.Any()).Return(tt.dbErr)

			redis := helpers.SetupTestRedis(t)
			h := handlers.NewHealthHandler(database, redis.Client, nil, tt.schema, helpers.LoadTestConfig(), helpers.TestLogger())
			mux := http.NewServeMux()
			h.RegisterRoutes(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", "/ready", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp struct {
				Ready   bool                   `json:"ready"`
				Details map[string]interface{} `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus == http.StatusOK, resp.Ready)
			assert.Equal(t, tt.expectedSchema, resp.Details["schema"])
			assert.Equal(t, "ready", resp.Details["redis"])
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handlers.NewHealthHandler(mocks.NewMockDatabase(ctrl), nil, nil, nil, helpers.LoadTestConfig(), helpers.TestLogger())

	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest("GET", "/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}
