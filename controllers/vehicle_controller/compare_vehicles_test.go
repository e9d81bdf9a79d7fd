package vehicle_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
)

// The size gate rejects before any store access, so the handler can run
// against a bare router.
func TestCompareVehicles_SizeGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/vehicles/compare", CompareVehicles)

	post := func(t *testing.T, body string) (int, models.ApiResponse) {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/vehicles/compare", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return w.Code, resp
	}

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "single id rejected",
			body:    `{"ids":["a"]}`,
			message: "Please select 2-4 vehicles to compare (got 1)",
		},
		{
			name:    "five ids rejected",
			body:    `{"ids":["a","b","c","d","e"]}`,
			message: "Please select 2-4 vehicles to compare (got 5)",
		},
		{
			name:    "empty list rejected",
			body:    `{"ids":[]}`,
			message: "Please select 2-4 vehicles to compare (got 0)",
		},
		{
			name:    "missing ids rejected",
			body:    `{}`,
			message: "Please select 2-4 vehicles to compare (got 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := post(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.True(t, resp.Error)
			assert.Equal(t, tt.message, resp.Message)
		})
	}

	t.Run("malformed body rejected", func(t *testing.T) {
		code, resp := post(t, `{"ids":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid request body", resp.Message)
	})
}
