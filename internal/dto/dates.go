package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Date carries a date-only value over the wire as "YYYY-MM-DD".
// A JSON null or empty string decodes to an unset Date.
type Date struct{ t *time.Time }

// NewDate wraps an optional time for a response body.
func NewDate(t *time.Time) Date { return Date{t: t} }

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	d.t = &parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(dateLayout))
}

// Ptr returns *time.Time for use in service/domain.
func (d Date) Ptr() *time.Time { return d.t }

// DateTime carries a timestamp over the wire as "YYYY-MM-DD HH:MM:SS".
// A JSON null or empty string decodes to an unset DateTime.
type DateTime struct{ t *time.Time }

// NewDateTime wraps a required time for a response body.
func NewDateTime(t time.Time) DateTime { return DateTime{t: &t} }

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	parsed, err := time.Parse(dateTimeLayout, strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("timestamp must be YYYY-MM-DD HH:MM:SS")
	}
	parsed = parsed.UTC()
	d.t = &parsed
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.UTC().Format(dateTimeLayout))
}

// Ptr returns *time.Time for use in service/domain.
func (d DateTime) Ptr() *time.Time { return d.t }
