package flowsession

import (
	"encoding/json"
	"time"
)

// Record is the flow-correlation record persisted under a single well-known
// storage key. It carries the identifier a user typed on the pre-auth screen
// across the page transition to login or register.
//
// The wire layout is fixed by the storage contract shared with the client UI:
//
//	{"value": "a@x.com", "timestamp": 1735689600000, "originFlag": true}
type Record struct {
	// Value is the correlated identifier, typically an email address.
	Value string `json:"value"`
	// Timestamp is the creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
	// OriginFlag marks records written by the pre-auth entry screen.
	// Records without it are treated as absent.
	OriginFlag bool `json:"originFlag"`
}

// CreatedAt returns the record's creation time.
func (r Record) CreatedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Expired reports whether the record is older than ttl at the given instant.
func (r Record) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.CreatedAt()) > ttl
}

func encodeRecord(r Record) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeRecord(raw string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
