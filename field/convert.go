package field

import (
	"strconv"
	"strings"
)

// Parse and serialize policy for every semantic type. The policy is closed:
// persisted and remote data is untrusted, so a failed parse keeps the
// current value (or the element default inside arrays) instead of raising.

// arraySep joins and splits array-typed values.
const arraySep = ","

// ParseInt32 parses raw as a decimal int32, returning cur on failure.
func ParseInt32(raw string, cur int32) int32 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return cur
	}

	return int32(v)
}

// ParseInt64 parses raw as a decimal int64, returning cur on failure.
func ParseInt64(raw string, cur int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return cur
	}

	return v
}

// ParseFloat32 parses raw as a locale-invariant decimal, returning cur on
// failure.
func ParseFloat32(raw string, cur float32) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return cur
	}

	return float32(v)
}

// ParseBool returns true iff raw is "true" (any case) or "1".
func ParseBool(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.EqualFold(raw, "true") || raw == "1"
}

// ParseInt32Slice splits raw on commas and parses each element. Malformed
// elements default to zero independently; the array as a whole never fails.
func ParseInt32Slice(raw string) []int32 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, arraySep)
	out := make([]int32, len(parts))

	for i, p := range parts {
		out[i] = ParseInt32(p, 0)
	}

	return out
}

// ParseFloat32Slice splits raw on commas and parses each element. Malformed
// elements default to zero independently.
func ParseFloat32Slice(raw string) []float32 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, arraySep)
	out := make([]float32, len(parts))

	for i, p := range parts {
		out[i] = ParseFloat32(p, 0)
	}

	return out
}

// FormatInt32 serializes v as a decimal string.
func FormatInt32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// FormatInt64 serializes v as a decimal string.
func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat32 serializes v as a locale-invariant decimal.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// FormatBool serializes v as "True" or "False".
func FormatBool(v bool) string {
	if v {
		return "True"
	}

	return "False"
}

// FormatInt32Slice joins v with commas.
func FormatInt32Slice(v []int32) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = FormatInt32(e)
	}

	return strings.Join(parts, arraySep)
}

// FormatFloat32Slice joins v with commas.
func FormatFloat32Slice(v []float32) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = FormatFloat32(e)
	}

	return strings.Join(parts, arraySep)
}
