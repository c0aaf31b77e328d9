package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{fmt.Errorf("%w: name is required", ErrValidation), http.StatusBadRequest, "validation failed: name is required"},
		{ErrEmailAlreadyExists, http.StatusBadRequest, "User already exists"},
		{ErrUnsupportedMediaType, http.StatusBadRequest, "Only images and GLB models are allowed"},
		{ErrNoFile, http.StatusBadRequest, "No file uploaded"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{ErrForbidden, http.StatusForbidden, "Forbidden: insufficient permissions"},
		{ErrPlantNotFound, http.StatusNotFound, "Plant not found"},
		{ErrTourNotFound, http.StatusNotFound, "Tour not found"},
		{ErrUserNotFound, http.StatusNotFound, "User not found"},
		{ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			require.Equal(t, tt.code, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
			assert.Nil(t, body.Data)
		})
	}
}

func TestRespondCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondCreated(c, map[string]string{"id": "1"}, "created")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","code":201,"message":"created","data":{"id":"1"}}`, w.Body.String())
}

func TestFormatUnixRFC3339(t *testing.T) {
	assert.Equal(t, "2024-03-01T12:00:00Z", FormatUnixRFC3339(1709294400))
}
