package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for request timestamps. Values without a zone offset are
// read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Timestamp is a request time that accepts RFC 3339 as well as naive ISO 8601
// date-times such as 2024-05-01T10:00:00.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			ts.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q, expected ISO 8601", raw)
}
