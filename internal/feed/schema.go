package feed

import (
	"encoding/json"
	"time"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"

	SchemaPublic = "public"

	TableDevices  = "devices"
	TableReadings = "readings"
)

// ChangeEvent is one row-change record on the realtime feed. New holds
// the table-specific row payload and stays raw until the consumer knows
// which table the event belongs to.
type ChangeEvent struct {
	Event  string          `json:"event"`
	Schema string          `json:"schema"`
	Table  string          `json:"table"`
	New    json.RawMessage `json:"new"`
}

// DeviceRow is the devices payload on the wire. The api_key column is
// deliberately absent: the feed has no per-subscriber authorization.
type DeviceRow struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	LastSeen    *time.Time `json:"last_seen"`
}

type ReadingRow struct {
	ID        int64     `json:"id"`
	SensorID  string    `json:"sensor_id"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}
