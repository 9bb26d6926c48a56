package model

import (
	"bytes"
	"encoding/json"
	"time"

	apperrors "catalog-service/pkg/errors"
)

const dateOnly = "2006-01-02"

// Date is a request timestamp that also accepts a bare YYYY-MM-DD date,
// read as the last millisecond of that day in UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return invalidDate()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t.AddDate(0, 0, 1).Add(-time.Millisecond)
		return nil
	}
	return invalidDate()
}

func invalidDate() error {
	return apperrors.Invalid("endDate must be an RFC3339 timestamp or a YYYY-MM-DD date")
}
