package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RoundStatus maps an interview round name to its completion flag.
// Keys are whatever the user typed, compared case-sensitively; the server
// never trims or normalizes them. Stored as a jsonb column.
type RoundStatus map[string]int

func (rs RoundStatus) Value() (driver.Value, error) {
	if rs == nil {
		rs = RoundStatus{}
	}
	return json.Marshal(rs)
}

func (rs *RoundStatus) Scan(src interface{}) error {
	if src == nil {
		*rs = RoundStatus{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, rs)
	case string:
		return json.Unmarshal([]byte(v), rs)
	default:
		return fmt.Errorf("cannot scan %T into RoundStatus", src)
	}
}

// StringList is an ordered list of round names, stored as a jsonb column.
// Review rounds carry labels only, no per-round status.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}
