package amqp

import (
	"encoding/json"
	"time"
)

// Change operations carried by RecordsChangedMessage.
const (
	OpAdd     = "add"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpReplace = "replace" // full import
)

// RecordsChangedMessage notifies that the application collection changed.
// It carries only the operation and ids; consumers reload what they need
// from the snapshot store.
type RecordsChangedMessage struct {
	Op        string    `json:"op"`
	RecordID  int64     `json:"record_id,omitempty"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// SettingsChangedMessage notifies that the preferences object was saved.
type SettingsChangedMessage struct {
	Timestamp time.Time `json:"timestamp"`
}

// Envelope wraps either message kind on the wire.
type Envelope struct {
	Kind     string                  `json:"kind"` // "records" or "settings"
	Records  *RecordsChangedMessage  `json:"records,omitempty"`
	Settings *SettingsChangedMessage `json:"settings,omitempty"`
}

const (
	KindRecords  = "records"
	KindSettings = "settings"
)

func NewRecordsChangedMessage(op string, recordID int64, total int) *RecordsChangedMessage {
	return &RecordsChangedMessage{
		Op:        op,
		RecordID:  recordID,
		Total:     total,
		Timestamp: time.Now(),
	}
}

func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func EnvelopeFromJSON(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
