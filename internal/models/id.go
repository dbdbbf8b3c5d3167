package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a 64-bit record identifier. External callers send identifiers
// either as JSON numbers or as strings (clients with sub-64-bit number
// types stringify them); both decode to the same value.
type ID int64

func (i ID) Int64() int64 { return int64(i) }

func (i ID) String() string { return strconv.FormatInt(int64(i), 10) }

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("failed to decode id string: %w", err)
		}
		raw = str
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse id %q: %w", raw, err)
	}

	*i = ID(value)
	return nil
}

// ParseID parses an identifier from a path or query parameter.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse id %q: %w", raw, err)
	}
	return ID(value), nil
}
