package core

import (
	"errors"
	"strings"
	"time"
)

const (
	StatusPending            Status = "Pending"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusRejected           Status = "Rejected"
	StatusOfferReceived      Status = "Offer Received"
	StatusHired              Status = "Hired"
)

type (
	// Status is the lifecycle stage of a job application.
	Status string

	Date struct {
		time.Time
	}

	// Application is one tracked job application. The json tags define the
	// interchange format and must stay stable across export/import.
	Application struct {
		ID      int64  `json:"id"`
		Company string `json:"company"`
		Title   string `json:"title"`
		Status  Status `json:"status"`
		Date    Date   `json:"date"`
		Notes   string `json:"notes"`
	}
)

// Statuses lists all statuses in canonical order.
var Statuses = []Status{
	StatusPending,
	StatusInterviewScheduled,
	StatusRejected,
	StatusOfferReceived,
	StatusHired,
}

var (
	ErrEmptyCompany  = errors.New("empty company")
	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidDate   = errors.New("invalid date")
)

// ParseStatus maps a display string to a Status. Only the canonical
// display strings are accepted.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

// statusIcons maps each status to its display icon identifier.
var statusIcons = map[Status]string{
	StatusPending:            "fa-clock",
	StatusInterviewScheduled: "fa-calendar-check",
	StatusRejected:           "fa-times",
	StatusOfferReceived:      "fa-handshake",
	StatusHired:              "fa-trophy",
}

// StatusIcon returns the icon identifier for a status. Unknown statuses
// map to a default icon rather than failing.
func StatusIcon(s Status) string {
	if icon, ok := statusIcons[s]; ok {
		return icon
	}
	return "fa-tag"
}

// CSSClass returns the stylesheet class for a status badge, e.g.
// "status-interview-scheduled".
func (s Status) CSSClass() string {
	return "status-" + strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

const dateLayout = "2006-01-02"

// NewDate creates a Date at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses the interchange form "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (a Application) Validate() error {
	if len(strings.TrimSpace(a.Company)) == 0 {
		return ErrEmptyCompany
	}
	if len(strings.TrimSpace(a.Title)) == 0 {
		return ErrEmptyTitle
	}
	if err := a.Status.Validate(); err != nil {
		return err
	}
	if err := a.Date.Validate(); err != nil {
		return err
	}
	return nil
}
