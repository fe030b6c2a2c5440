package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]string{"response": "4"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"response":"4"}`, rec.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusServiceUnavailable, "history store unavailable")

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusServiceUnavailable, problem.Status)
	assert.Equal(t, "Service Unavailable", problem.Title)
	assert.Equal(t, "history store unavailable", problem.Detail)
	assert.True(t, strings.HasPrefix(problem.Type, "https://"))
}

func TestParseJSON(t *testing.T) {
	var dest struct {
		UserID   string  `json:"user_id"`
		Question *string `json:"question"`
	}

	r := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id":"u1","question":"","extra":1}`))
	require.NoError(t, ParseJSON(httptest.NewRecorder(), r, &dest))
	assert.Equal(t, "u1", dest.UserID)
	require.NotNil(t, dest.Question)
	assert.Equal(t, "", *dest.Question)

	r = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`[1,2`))
	assert.Error(t, ParseJSON(httptest.NewRecorder(), r, &dest))
}
