package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name       string
		msg        string
		validation []string
		want       int
	}{
		{"validation wins", "validation failed", []string{"x"}, http.StatusBadRequest},
		{"unauthorized", "unauthorized", nil, http.StatusUnauthorized},
		{"forbidden", "forbidden", nil, http.StatusForbidden},
		{"not found suffix", "learning path not found", nil, http.StatusNotFound},
		{"conflict on already", "already enrolled in this learning path", nil, http.StatusConflict},
		{"generic failure", "failed to create assessment", nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusFor(tc.msg, tc.validation))
		})
	}
}
