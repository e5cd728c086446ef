package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer sent either as a JSON number or as a numeric
// string, as HTML form values are. Fractional numbers are truncated toward
// zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*n = FlexInt(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	if math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("integer %s out of range", data)
	}
	*n = FlexInt(math.Trunc(f))
	return nil
}

// Ptr returns a pointer to n as a plain int, or nil when n is nil
func (n *FlexInt) Ptr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
