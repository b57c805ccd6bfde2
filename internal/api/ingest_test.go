package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iot-telemetry-backend/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func entries(e ...IngestEntry) *[]IngestEntry { return &e }

func ingestBody(t *testing.T, req IngestRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	assert.NoError(t, err)
	return string(data)
}

func Test_Ingest(t *testing.T) {
	device := db.Device{
		ID:     "device-1",
		UserID: "user-1",
		Name:   "greenhouse",
		APIKey: "abc123",
	}
	sensor := db.Sensor{
		ID:       "sensor-1",
		DeviceID: device.ID,
		Name:     "temp",
		Type:     "temp",
	}
	reading := db.Reading{
		ID:        7,
		SensorID:  sensor.ID,
		Value:     21.5,
		Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name             string
		method           string
		payload          func(t *testing.T) string
		setupRepo        func(t *testing.T) repository
		setupFeed        func(t *testing.T) publisher
		expectedStatus   int
		expectedInserted int
	}{
		{
			name:           "preflight",
			method:         http.MethodOptions,
			payload:        func(t *testing.T) string { return "" },
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			payload:        func(t *testing.T) string { return "" },
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid json",
			method:         http.MethodPost,
			payload:        func(t *testing.T) string { return "not-a-json" },
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing device key",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					Readings: entries(IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)}),
				})
			},
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing readings array",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{DeviceKey: strPtr("abc123")})
			},
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "readings not an array",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return `{"device_key":"abc123","readings":"nope"}`
			},
			setupRepo:      func(t *testing.T) repository { return NewMockrepository(t) },
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown device key",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("bad"),
					Readings:  entries(IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(1)}),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "bad").Return(db.Device{}, db.ErrDeviceNotFound)
				return repo
			},
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure on key lookup",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("abc123"),
					Readings:  entries(IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(1)}),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(db.Device{}, errors.New("connection refused"))
				return repo
			},
			setupFeed:      func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "full batch inserted",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("abc123"),
					Readings: entries(
						IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)},
						IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(22.0)},
					),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(device, nil)
				repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "temp").Return(sensor, nil).Times(2)
				repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 21.5).Return(reading, nil)
				repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 22.0).Return(reading, nil)
				return repo
			},
			setupFeed: func(t *testing.T) publisher {
				pub := NewMockpublisher(t)
				pub.EXPECT().ReadingInserted(mock.Anything, reading).Return(nil).Times(2)
				pub.EXPECT().DeviceUpdated(mock.Anything, mock.Anything).Return(nil)
				return pub
			},
			expectedStatus:   http.StatusOK,
			expectedInserted: 2,
		},
		{
			name:   "partial batch counts only inserted entries",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("abc123"),
					Readings: entries(
						IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)},
						IngestEntry{SensorName: nil, Value: f64Ptr(3)},
						IngestEntry{SensorName: strPtr("hum"), Value: nil},
						IngestEntry{SensorName: strPtr("broken"), Value: f64Ptr(4)},
					),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(device, nil)
				repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "temp").Return(sensor, nil)
				repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "broken").Return(db.Sensor{}, errors.New("insert failed"))
				repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 21.5).Return(reading, nil)
				return repo
			},
			setupFeed: func(t *testing.T) publisher {
				pub := NewMockpublisher(t)
				pub.EXPECT().ReadingInserted(mock.Anything, reading).Return(nil)
				pub.EXPECT().DeviceUpdated(mock.Anything, mock.Anything).Return(nil)
				return pub
			},
			expectedStatus:   http.StatusOK,
			expectedInserted: 1,
		},
		{
			name:   "reading insert failure skips entry",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("abc123"),
					Readings: entries(
						IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)},
					),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(device, nil)
				repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "temp").Return(sensor, nil)
				repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 21.5).Return(db.Reading{}, errors.New("insert failed"))
				return repo
			},
			setupFeed:        func(t *testing.T) publisher { return NewMockpublisher(t) },
			expectedStatus:   http.StatusOK,
			expectedInserted: 0,
		},
		{
			name:   "publish failure does not fail the request",
			method: http.MethodPost,
			payload: func(t *testing.T) string {
				return ingestBody(t, IngestRequest{
					DeviceKey: strPtr("abc123"),
					Readings:  entries(IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)}),
				})
			},
			setupRepo: func(t *testing.T) repository {
				repo := NewMockrepository(t)
				repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(device, nil)
				repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "temp").Return(sensor, nil)
				repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 21.5).Return(reading, nil)
				return repo
			},
			setupFeed: func(t *testing.T) publisher {
				pub := NewMockpublisher(t)
				pub.EXPECT().ReadingInserted(mock.Anything, reading).Return(errors.New("broker down"))
				pub.EXPECT().DeviceUpdated(mock.Anything, mock.Anything).Return(errors.New("broker down"))
				return pub
			},
			expectedStatus:   http.StatusOK,
			expectedInserted: 1,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a := New(Config{
				DB:   tt.setupRepo(t),
				Feed: tt.setupFeed(t),
			})

			r := httptest.NewRequest(tt.method, "https://test.com/ingest", bytes.NewBufferString(tt.payload(t)))
			w := httptest.NewRecorder()
			a.Ingest(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))

			if tt.expectedStatus == http.StatusOK {
				var resp IngestResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, device.ID, resp.DeviceID)
				assert.Equal(t, tt.expectedInserted, resp.ReadingsInserted)
			}
		})
	}
}

func Test_Ingest_DeviceUpdateCarriesLastSeen(t *testing.T) {
	device := db.Device{ID: "device-1", APIKey: "abc123"}
	sensor := db.Sensor{ID: "sensor-1", DeviceID: device.ID, Name: "temp"}
	reading := db.Reading{
		ID:        1,
		SensorID:  sensor.ID,
		Value:     21.5,
		Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}

	repo := NewMockrepository(t)
	repo.EXPECT().GetDeviceByAPIKey(mock.Anything, "abc123").Return(device, nil)
	repo.EXPECT().FindOrCreateSensor(mock.Anything, device.ID, "temp").Return(sensor, nil)
	repo.EXPECT().InsertReading(mock.Anything, sensor.ID, 21.5).Return(reading, nil)

	pub := NewMockpublisher(t)
	pub.EXPECT().ReadingInserted(mock.Anything, reading).Return(nil)
	pub.EXPECT().DeviceUpdated(mock.Anything, mock.Anything).Run(func(_ context.Context, published db.Device) {
		assert.NotNil(t, published.LastSeen)
		assert.Equal(t, reading.Timestamp, *published.LastSeen)
	}).Return(nil)

	a := New(Config{DB: repo, Feed: pub})
	body := ingestBody(t, IngestRequest{
		DeviceKey: strPtr("abc123"),
		Readings:  entries(IngestEntry{SensorName: strPtr("temp"), Value: f64Ptr(21.5)}),
	})

	r := httptest.NewRequest(http.MethodPost, "https://test.com/ingest", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	a.Ingest(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
