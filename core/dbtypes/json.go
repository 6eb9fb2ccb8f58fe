package dbtypes

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON holds a json or jsonb column verbatim. A nil or empty value is
// SQL NULL and encodes as JSON null.
type JSON []byte

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler.
func (j JSON) MarshalJSON() ([]byte, error) {
	if j.IsNull() {
		return jsonNull, nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return fmt.Errorf("dbtypes.JSON: UnmarshalJSON on nil pointer")
	}
	if bytes.Equal(data, jsonNull) {
		*j = nil
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSON(nil), v...)
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("dbtypes.JSON: cannot scan %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	if !json.Valid(j) {
		return nil, fmt.Errorf("dbtypes.JSON: invalid JSON")
	}
	return string(j), nil
}

// IsNull reports whether j represents SQL NULL.
func (j JSON) IsNull() bool {
	return len(j) == 0 || bytes.Equal(j, jsonNull)
}

// Decode unmarshals j into v.
func (j JSON) Decode(v any) error {
	if j.IsNull() {
		return nil
	}
	return json.Unmarshal(j, v)
}

// MarshalToJSON encodes v as a JSON column value.
func MarshalToJSON(v any) (JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return JSON(b), nil
}
