package api

// Ingestion request fields are pointers so a missing or null field is
// distinguishable from a present-but-zero one: the contract drops
// malformed entries silently but rejects a payload whose top-level
// fields are absent.
type IngestEntry struct {
	SensorName *string  `json:"sensor_name"`
	Value      *float64 `json:"value"`
}

type IngestRequest struct {
	DeviceKey *string        `json:"device_key"`
	Readings  *[]IngestEntry `json:"readings"`
}

type IngestResponse struct {
	Success          bool   `json:"success"`
	DeviceID         string `json:"device_id"`
	ReadingsInserted int    `json:"readings_inserted"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type CreateDeviceRequest struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateSensorRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Unit string `json:"unit"`
}
