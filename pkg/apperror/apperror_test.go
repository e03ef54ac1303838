package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "abc"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad payload", nil), http.StatusBadRequest},
		{"permission denied", NewPermissionDenied("not the owner"), http.StatusForbidden},
		{"internal", NewInternal("query failed", errors.New("boom")), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestAppError_UnwrapMatchesSentinel(t *testing.T) {
	cause := errors.New("no rows")
	err := NewInternal("query failed", cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, cause, err.Err)
}

func TestAppError_ToJSONOmitsDetails(t *testing.T) {
	err := NewInvalidInput("email missing an @", errors.New("mail: parse failure"))

	body := err.ToJSON()
	assert.Equal(t, ErrInvalidInput.Error(), body["error"])
	assert.Equal(t, "Invalid input provided", body["message"])
	assert.NotContains(t, body, "details")
}
