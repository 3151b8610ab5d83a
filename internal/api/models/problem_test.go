package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/api/models"
)

func TestProblem_Write(t *testing.T) {
	p := models.NewLocationNotFound("req_abc", "no match for query")
	p.Instance = "/v1/locations/resolve"

	rec := httptest.NewRecorder()
	p.Write(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req_abc", rec.Header().Get("X-Request-Id"))

	var decoded models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, models.ProblemTypeLocationNotFound, decoded.Type)
	assert.Equal(t, "no match for query", decoded.Detail)
	assert.Equal(t, "/v1/locations/resolve", decoded.Instance)
}

func TestProblem_Constructors(t *testing.T) {
	tests := []struct {
		name       string
		problem    *models.Problem
		wantStatus int
		wantType   string
	}{
		{"bad request", models.NewBadRequest("t", "d", nil), http.StatusBadRequest, models.ProblemTypeValidation},
		{"weather unavailable", models.NewWeatherUnavailable("t", "d"), http.StatusBadGateway, models.ProblemTypeWeatherUnavailable},
		{"upstream timeout", models.NewUpstreamTimeout("t", "d"), http.StatusGatewayTimeout, models.ProblemTypeUpstreamTimeout},
		{"service unavailable", models.NewServiceUnavailable("t", "d"), http.StatusServiceUnavailable, models.ProblemTypeUnavailable},
		{"internal", models.NewInternalError("t", "d"), http.StatusInternalServerError, models.ProblemTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.problem.Status)
			assert.Equal(t, tt.wantType, tt.problem.Type)
		})
	}
}

func TestProblem_WithErrors(t *testing.T) {
	p := models.NewBadRequest("t", "invalid params", []models.FieldError{
		{Field: "lat", Message: "must be between -90 and 90"},
	})
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "lat", p.Errors[0].Field)
}
