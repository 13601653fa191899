package kv

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LenientInt decodes a JSON number or a numeric string. Anything else,
// including NaN and infinities, decodes to 0. Fractions are truncated.
type LenientInt int

func (n *LenientInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
		*n = 0
		return nil
	}
	*n = LenientInt(f)
	return nil
}
