package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"iot-telemetry-backend/internal/db"

	"github.com/go-chi/chi/v5"
)

type repository interface {
	GetDeviceByAPIKey(ctx context.Context, apiKey string) (db.Device, error)
	GetDevice(ctx context.Context, id string) (db.Device, error)
	ListDevices(ctx context.Context, userID string) ([]db.Device, error)
	CreateDevice(ctx context.Context, userID, name, description, apiKey string) (db.Device, error)
	DeleteDevice(ctx context.Context, id string) error
	FindOrCreateSensor(ctx context.Context, deviceID, name string) (db.Sensor, error)
	CreateSensor(ctx context.Context, deviceID, name, sensorType, unit string) (db.Sensor, error)
	ListSensorsWithLatestReading(ctx context.Context, deviceID string) ([]db.SensorWithLatest, error)
	InsertReading(ctx context.Context, sensorID string, value float64) (db.Reading, error)
	ListReadings(ctx context.Context, sensorID string, limit int) ([]db.Reading, error)
}

type publisher interface {
	ReadingInserted(ctx context.Context, reading db.Reading) error
	DeviceUpdated(ctx context.Context, device db.Device) error
}

type API struct {
	db   repository
	feed publisher
}

type Config struct {
	DB   repository
	Feed publisher
}

func New(cfg Config) *API {
	return &API{db: cfg.DB, feed: cfg.Feed}
}

func (a *API) RegisterRoutes(r chi.Router) {
	r.Get("/health", a.Health)
	// All methods route into Ingest so 405 and preflight responses carry
	// CORS headers too.
	r.HandleFunc("/ingest", a.Ingest)
	r.Post("/devices", a.CreateDevice)
	r.Get("/devices", a.ListDevices)
	r.Get("/devices/{device_id}", a.GetDevice)
	r.Delete("/devices/{device_id}", a.DeleteDevice)
	r.Post("/devices/{device_id}/sensors", a.CreateSensor)
	r.Get("/devices/{device_id}/sensors", a.ListSensors)
	r.Get("/sensors/{sensor_id}/readings", a.ListReadings)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (a *API) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "user_id and name are required"})
		return
	}

	apiKey, err := newAPIKey()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	device, err := a.db.CreateDevice(r.Context(), req.UserID, req.Name, req.Description, apiKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, device)
}

func (a *API) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := a.db.ListDevices(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	if devices == nil {
		devices = []db.Device{}
	}
	writeJSON(w, http.StatusOK, devices)
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	device, err := a.db.GetDevice(r.Context(), chi.URLParam(r, "device_id"))
	if err != nil {
		if errors.Is(err, db.ErrDeviceNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "device not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (a *API) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	err := a.db.DeleteDevice(r.Context(), chi.URLParam(r, "device_id"))
	if err != nil {
		if errors.Is(err, db.ErrDeviceNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "device not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) CreateSensor(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	var req CreateSensorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	sensor, err := a.db.CreateSensor(r.Context(), deviceID, req.Name, req.Type, req.Unit)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateName) {
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "sensor name already exists for device"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, sensor)
}

func (a *API) ListSensors(w http.ResponseWriter, r *http.Request) {
	sensors, err := a.db.ListSensorsWithLatestReading(r.Context(), chi.URLParam(r, "device_id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	if sensors == nil {
		sensors = []db.SensorWithLatest{}
	}
	writeJSON(w, http.StatusOK, sensors)
}

func (a *API) ListReadings(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = min(n, 1000)
	}

	readings, err := a.db.ListReadings(r.Context(), chi.URLParam(r, "sensor_id"), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		return
	}
	if readings == nil {
		readings = []db.Reading{}
	}
	writeJSON(w, http.StatusOK, readings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// newAPIKey mints a device credential: 16 random bytes, hex encoded.
// The plain key is stored and returned once at creation.
func newAPIKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
