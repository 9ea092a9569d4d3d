package provider

import (
	"math"
	"strconv"
	"strings"
)

// ExtractValue normalizes a stat value from various API response formats.
//
// CBBD returns nested objects like {"total": 7, "offensive": 2} for rebounds
// and {"made": 3, "attempted": 8} for shooting. Other providers return flat
// numbers or numeric strings. This handles all of them.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ExtractValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		for _, key := range []string{"total", "made", "all", "count"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// FieldMap lists, per canonical field, the provider field names that may
// carry it. Names are tried in order; the first extractable value wins.
type FieldMap map[string][]string

// Float resolves a canonical field against a decoded provider object.
// present reports whether any synonym key exists on the object at all, even
// if its value is null or not numeric.
func (m FieldMap) Float(obj map[string]interface{}, field string) (value float64, present bool) {
	for _, name := range m[field] {
		raw, exists := obj[name]
		if !exists {
			continue
		}
		present = true
		if v, ok := ExtractValue(raw); ok {
			return v, true
		}
	}
	return 0, present
}

// Value resolves a numeric field, reporting ok only when a synonym carried
// an extractable number.
func (m FieldMap) Value(obj map[string]interface{}, field string) (float64, bool) {
	for _, name := range m[field] {
		if v, ok := ExtractValue(obj[name]); ok {
			return v, true
		}
	}
	return 0, false
}

// Stat resolves a counting stat. It returns nil when the provider sent none
// of the field's synonyms, and zero when a synonym was sent as null.
func (m FieldMap) Stat(obj map[string]interface{}, field string) *int {
	v, present := m.Float(obj, field)
	if !present {
		return nil
	}
	return Int(int(math.Round(v)))
}

// Int resolves a numeric field, defaulting to zero.
func (m FieldMap) Int(obj map[string]interface{}, field string) int {
	v, _ := m.Float(obj, field)
	return int(math.Round(v))
}

// String resolves a string field, returning the first non-empty synonym.
func (m FieldMap) String(obj map[string]interface{}, field string) string {
	for _, name := range m[field] {
		switch v := obj[name].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
