package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Undefined is rendered in place of a field the request body did not carry.
const Undefined = "undefined"

// Field is a request body value of any JSON type that may be absent.
type Field struct {
	raw json.RawMessage
	set bool
}

// NewField builds a present field from an already encoded JSON value.
func NewField(raw string) Field {
	return Field{raw: json.RawMessage(raw), set: true}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.raw = append(f.raw[:0], data...)
	f.set = true
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// IsSet reports whether the field was present in the body.
func (f Field) IsSet() bool {
	return f.set
}

// String renders the value the way it is interpolated into response text:
// strings unquoted, numbers by value, true/false/null as written, objects and
// arrays compacted.
func (f Field) String() string {
	if !f.set {
		return Undefined
	}

	trimmed := bytes.TrimSpace(f.raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	if len(trimmed) > 0 && (trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9')) {
		if s, ok := formatNumber(string(trimmed)); ok {
			return s
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	return compact.String()
}

// formatNumber prints a JSON number by its float64 value: 7.0 as "7", 1e2 as
// "100". Magnitudes of 1e21 and above or below 1e-6 use exponent notation
// with a signed, unpadded exponent ("1e+21", "1.5e-7").
func formatNumber(literal string) (string, bool) {
	v, err := strconv.ParseFloat(literal, 64)
	switch {
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	case err != nil:
		return "", false
	case v == 0:
		return "0", true
	}

	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + digits, true
}
