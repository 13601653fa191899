package kv_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytimer/internal/platform/kv"
)

func TestLenientIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want int
	}{
		{raw: `25`, want: 25},
		{raw: `"25"`, want: 25},
		{raw: `" 5 "`, want: 5},
		{raw: `12.9`, want: 12},
		{raw: `"-3"`, want: -3},
		{raw: `"abc"`, want: 0},
		{raw: `""`, want: 0},
		{raw: `null`, want: 0},
		{raw: `"NaN"`, want: 0},
		{raw: `1e300`, want: 0},
	}
	for _, tc := range cases {
		var n kv.LenientInt
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &n), tc.raw)
		assert.Equal(t, tc.want, int(n), tc.raw)
	}
}
