package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative", -3, -1, 1, DefaultPageSize},
		{"passthrough", 2, 25, 2, 25},
		{"clamped to max", 1, 5000, 1, MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, pageSize := NormalizePaging(tc.page, tc.pageSize)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantPS, pageSize)
		})
	}
}

func TestNewPage_NilItemsBecomeEmptySlice(t *testing.T) {
	p := NewPage[string](nil, 0, 1, 10)
	require.NotNil(t, p.Items)
	require.Len(t, p.Items, 0)
}

func TestNotFound_MessageSuffix(t *testing.T) {
	r := NotFound[string]("learning path")
	require.True(t, r.IsFailure())
	require.Equal(t, "learning path not found", r.Error)
}

func TestInvalid_CarriesMessages(t *testing.T) {
	r := Invalid[int]([]string{"Title failed on required"})
	require.False(t, r.Success)
	require.Equal(t, "validation failed", r.Error)
	require.Len(t, r.ValidationErrors, 1)
}

func TestOk(t *testing.T) {
	r := Ok(42)
	require.True(t, r.Success)
	require.Equal(t, 42, r.Data)
	require.False(t, r.IsFailure())
}
