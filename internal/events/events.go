package events

import (
	"encoding/json"
	"time"
)

// Event types published to the UI over SSE.
const (
	TypePing           = "ping"
	TypeSessionChanged = "session_changed"
	TypeJobCreated     = "job_created"
	TypeJobDeleted     = "job_deleted"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// SessionChanged is the payload of a session_changed event. The token
// never rides on the event stream.
type SessionChanged struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
