package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a form amount that accepts either a JSON number or a numeric string.
// Empty strings and null decode to zero so that min rules report them.
type Number float64

// NumberError is returned when a string amount is not a finite number.
type NumberError struct {
	Value string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("value must be a valid number (got %q)", e.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return &NumberError{Value: raw}
	}
	*n = Number(v)
	return nil
}

// Float64 returns n as a plain float.
func (n Number) Float64() float64 {
	return float64(n)
}
