package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"iot-telemetry-backend/internal/db"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Authorization, X-Device-Key, Apikey, Content-Type"
)

// Ingest accepts a device-authenticated batch of readings. One bad entry
// never aborts the batch: entries are resolved and inserted
// independently and the response counts how many of them landed.
func (a *API) Ingest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeCORS(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeviceKey == nil || *req.DeviceKey == "" || req.Readings == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payload: device_key and readings[] are required"})
		return
	}

	device, err := a.db.GetDeviceByAPIKey(ctx, *req.DeviceKey)
	if err != nil {
		if errors.Is(err, db.ErrDeviceNotFound) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid device key"})
			return
		}
		slog.ErrorContext(ctx, "Error resolving device key", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}

	inserted := 0
	var lastTimestamp time.Time
	for _, entry := range *req.Readings {
		if entry.SensorName == nil || *entry.SensorName == "" || entry.Value == nil {
			slog.DebugContext(ctx, "Skipping malformed reading entry", "device_id", device.ID)
			continue
		}

		sensor, err := a.db.FindOrCreateSensor(ctx, device.ID, *entry.SensorName)
		if err != nil {
			slog.WarnContext(ctx, "Skipping entry, sensor resolution failed",
				"error", err,
				"device_id", device.ID,
				"sensor_name", *entry.SensorName,
			)
			continue
		}

		reading, err := a.db.InsertReading(ctx, sensor.ID, *entry.Value)
		if err != nil {
			slog.WarnContext(ctx, "Skipping entry, reading insert failed",
				"error", err,
				"device_id", device.ID,
				"sensor_id", sensor.ID,
			)
			continue
		}
		inserted++
		lastTimestamp = reading.Timestamp

		if err := a.feed.ReadingInserted(ctx, reading); err != nil {
			slog.ErrorContext(ctx, "Error publishing reading event", "error", err, "sensor_id", sensor.ID)
		}
	}

	if inserted > 0 {
		// The readings trigger advanced last_seen in the store; mirror
		// that on the outgoing event without a re-fetch.
		device.LastSeen = &lastTimestamp
		if err := a.feed.DeviceUpdated(ctx, device); err != nil {
			slog.ErrorContext(ctx, "Error publishing device event", "error", err, "device_id", device.ID)
		}
	}

	writeJSON(w, http.StatusOK, IngestResponse{
		Success:          true,
		DeviceID:         device.ID,
		ReadingsInserted: inserted,
	})
}

func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}
