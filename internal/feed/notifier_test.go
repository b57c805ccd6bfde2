package feed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"iot-telemetry-backend/internal/db"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_ReadingInserted(t *testing.T) {
	reading := db.Reading{
		ID:        42,
		SensorID:  "sensor-1",
		Value:     21.5,
		Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}

	row, _ := json.Marshal(ReadingRow{
		ID:        reading.ID,
		SensorID:  reading.SensorID,
		Value:     reading.Value,
		Timestamp: reading.Timestamp,
	})
	record, _ := json.Marshal(ChangeEvent{
		Event:  EventInsert,
		Schema: SchemaPublic,
		Table:  TableReadings,
		New:    row,
	})

	writer := NewMockWriter(t)
	writer.EXPECT().WriteMessages(
		mock.Anything,
		kafka.Message{Key: []byte(reading.SensorID), Value: record},
	).Return(nil)

	notifier := NewNotifier(writer)
	assert.NoError(t, notifier.ReadingInserted(context.Background(), reading))
}

func Test_DeviceUpdated_OmitsAPIKey(t *testing.T) {
	lastSeen := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	device := db.Device{
		ID:       "device-1",
		UserID:   "user-1",
		Name:     "greenhouse",
		APIKey:   "secret",
		LastSeen: &lastSeen,
	}

	writer := NewMockWriter(t)
	var published kafka.Message
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		Run(func(_ context.Context, msgs ...kafka.Message) {
			published = msgs[0]
		}).
		Return(nil)

	notifier := NewNotifier(writer)
	assert.NoError(t, notifier.DeviceUpdated(context.Background(), device))

	assert.Equal(t, []byte(device.ID), published.Key)
	assert.NotContains(t, string(published.Value), "secret")

	var event ChangeEvent
	assert.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, EventUpdate, event.Event)
	assert.Equal(t, TableDevices, event.Table)

	var row DeviceRow
	assert.NoError(t, json.Unmarshal(event.New, &row))
	assert.Equal(t, device.ID, row.ID)
	require.NotNil(t, row.LastSeen)
	assert.Equal(t, lastSeen, row.LastSeen.UTC())
}

func Test_Publish_WriteFailure(t *testing.T) {
	writer := NewMockWriter(t)
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	notifier := NewNotifier(writer)
	err := notifier.ReadingInserted(context.Background(), db.Reading{ID: 1, SensorID: "sensor-1"})
	assert.ErrorIs(t, err, ErrWriteEvent)
}
