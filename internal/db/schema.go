package db

import "time"

type Device struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	APIKey      string     `json:"api_key"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSeen    *time.Time `json:"last_seen"`
}

type Sensor struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type Reading struct {
	ID        int64     `json:"id"`
	SensorID  string    `json:"sensor_id"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// SensorWithLatest is a sensor row joined with its most recent reading.
// Latest fields are nil for sensors that have no readings yet.
type SensorWithLatest struct {
	Sensor
	LatestValue     *float64   `json:"latest_value"`
	LatestTimestamp *time.Time `json:"latest_timestamp"`
}
