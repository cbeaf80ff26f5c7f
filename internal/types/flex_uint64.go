package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexUint64 is a row id posted either as a JSON number or as a numeric string, as browser
// forms send userid and createdbyuserid. Blank strings and null mean "not supplied" (zero).
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if raw = strings.TrimSpace(s); raw == "" {
			*f = 0
			return nil
		}
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: expected a whole number", data)
	}
	*f = FlexUint64(id)
	return nil
}

// MarshalJSON writes the id as a plain JSON number.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// Uint64 returns the id, zero when it was not supplied.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}
