package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"iot-telemetry-backend/internal/db"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshalEvent = errors.New("error marshalling change event")
	ErrWriteEvent   = errors.New("error writing change event")
)

// Notifier publishes row-change records after successful store writes.
// Delivery is best-effort: callers log failures and keep going, since
// subscribers have no replay to miss against.
type Notifier struct {
	writer Writer
}

func NewNotifier(writer Writer) *Notifier {
	return &Notifier{writer: writer}
}

func (n *Notifier) ReadingInserted(ctx context.Context, reading db.Reading) error {
	const fn = "Notifier:ReadingInserted"
	row := ReadingRow{
		ID:        reading.ID,
		SensorID:  reading.SensorID,
		Value:     reading.Value,
		Timestamp: reading.Timestamp,
	}
	return n.publish(ctx, fn, EventInsert, TableReadings, reading.SensorID, row)
}

func (n *Notifier) DeviceUpdated(ctx context.Context, device db.Device) error {
	const fn = "Notifier:DeviceUpdated"
	row := DeviceRow{
		ID:          device.ID,
		UserID:      device.UserID,
		Name:        device.Name,
		Description: device.Description,
		LastSeen:    device.LastSeen,
	}
	return n.publish(ctx, fn, EventUpdate, TableDevices, device.ID, row)
}

func (n *Notifier) publish(ctx context.Context, fn, event, table, key string, row any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalEvent, err)
	}
	record := ChangeEvent{
		Event:  event,
		Schema: SchemaPublic,
		Table:  table,
		New:    payload,
	}
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalEvent, err)
	}
	if err := n.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: out}); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteEvent, err)
	}
	return nil
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
