// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"fmt"
	"time"
)

// Offset-less layouts emitted for naive UTC datetimes. Values in these
// layouts are read as UTC.
var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Timestamp is a point in time on the wire. It is written as RFC 3339 and
// read from RFC 3339 or from a datetime without offset.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t as a [Timestamp].
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON accepts a JSON string in RFC 3339 or a naive layout, and
// null, which leaves the zero time.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp: expected JSON string, got %s", data)
	}
	raw := string(data[1 : len(data)-1])

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		ts.Time = t
		return nil
	}
	for _, layout := range naiveTimestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("timestamp: unsupported format %q", raw)
}
