package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"studybot/internal/domain"
	"studybot/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Anything that is not a client error is reported as a generic 500;
// the cause goes to the log, not the response.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// PathParam reads a required path value, writing a 400 when it is blank
func PathParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := r.PathValue(name)
	if strings.TrimSpace(value) == "" {
		httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("%s is required", label))
		return "", false
	}
	return value, true
}

// QueryInt parses an integer query parameter, clamped to [min, max].
// Missing or malformed values fall back to def.
func QueryInt(r *http.Request, name string, def, minVal, maxVal int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return max(minVal, min(v, maxVal))
}
