package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed   = errors.New("insert operation failed")
	ErrSelectFailed   = errors.New("select operation failed")
	ErrDeleteFailed   = errors.New("delete operation failed")
	ErrDeviceNotFound = errors.New("device not found")
	ErrSensorNotFound = errors.New("sensor not found")
	ErrDuplicateName  = errors.New("sensor name already exists for device")
)

func (db *DB) GetDeviceByAPIKey(ctx context.Context, apiKey string) (Device, error) {
	const fn = "DB:GetDeviceByAPIKey"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
			SELECT
				id,
				user_id,
				name,
				description,
				api_key,
				created_at,
				last_seen
			FROM devices
			WHERE api_key = $1
		`, apiKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrDeviceNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}

func (db *DB) GetDevice(ctx context.Context, id string) (Device, error) {
	const fn = "DB:GetDevice"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
			SELECT
				id,
				user_id,
				name,
				description,
				api_key,
				created_at,
				last_seen
			FROM devices
			WHERE id = $1
		`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrDeviceNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}

// ListDevices returns all devices, or only those owned by userID when it
// is non-empty.
func (db *DB) ListDevices(ctx context.Context, userID string) ([]Device, error) {
	const fn = "DB:ListDevices"
	var devices []Device
	err := pgxscan.Select(ctx, db.pool, &devices, `
			SELECT
				id,
				user_id,
				name,
				description,
				api_key,
				created_at,
				last_seen
			FROM devices
			WHERE $1 = '' OR user_id = $1
			ORDER BY created_at ASC
		`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

func (db *DB) CreateDevice(ctx context.Context, userID, name, description, apiKey string) (Device, error) {
	const fn = "DB:CreateDevice"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
			INSERT INTO devices (
				user_id,
				name,
				description,
				api_key
			) VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, name, description, api_key, created_at, last_seen
		`, userID, name, description, apiKey)
	if err != nil {
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return device, nil
}

// DeleteDevice removes a device; sensors and readings cascade.
func (db *DB) DeleteDevice(ctx context.Context, id string) error {
	const fn = "DB:DeleteDevice"
	tag, err := db.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrDeviceNotFound)
	}
	return nil
}

// FindOrCreateSensor resolves (deviceID, name) to a sensor row, creating
// it on first sighting with type = name and an empty unit. A concurrent
// first-sighting losing the unique-constraint race falls through to a
// re-select instead of surfacing the conflict.
func (db *DB) FindOrCreateSensor(ctx context.Context, deviceID, name string) (Sensor, error) {
	const fn = "DB:FindOrCreateSensor"
	var sensor Sensor
	err := pgxscan.Get(ctx, db.pool, &sensor, `
			SELECT id, device_id, name, unit, type, created_at
			FROM sensors
			WHERE device_id = $1 AND name = $2
		`, deviceID, name)
	if err == nil {
		return sensor, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Sensor{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}

	err = pgxscan.Get(ctx, db.pool, &sensor, `
			INSERT INTO sensors (device_id, name, unit, type)
			VALUES ($1, $2, '', $2)
			ON CONFLICT (device_id, name) DO NOTHING
			RETURNING id, device_id, name, unit, type, created_at
		`, deviceID, name)
	if err == nil {
		return sensor, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Sensor{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}

	// Lost the race: another writer created the row between the select
	// and the insert.
	err = pgxscan.Get(ctx, db.pool, &sensor, `
			SELECT id, device_id, name, unit, type, created_at
			FROM sensors
			WHERE device_id = $1 AND name = $2
		`, deviceID, name)
	if err != nil {
		return Sensor{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return sensor, nil
}

func (db *DB) CreateSensor(ctx context.Context, deviceID, name, sensorType, unit string) (Sensor, error) {
	const fn = "DB:CreateSensor"
	var sensor Sensor
	err := pgxscan.Get(ctx, db.pool, &sensor, `
			INSERT INTO sensors (device_id, name, unit, type)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (device_id, name) DO NOTHING
			RETURNING id, device_id, name, unit, type, created_at
		`, deviceID, name, unit, sensorType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Sensor{}, fmt.Errorf("%s:%w", fn, ErrDuplicateName)
		}
		return Sensor{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return sensor, nil
}

func (db *DB) DeleteSensor(ctx context.Context, id string) error {
	const fn = "DB:DeleteSensor"
	tag, err := db.pool.Exec(ctx, `DELETE FROM sensors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrSensorNotFound)
	}
	return nil
}

func (db *DB) ListSensors(ctx context.Context, deviceID string) ([]Sensor, error) {
	const fn = "DB:ListSensors"
	var sensors []Sensor
	err := pgxscan.Select(ctx, db.pool, &sensors, `
			SELECT id, device_id, name, unit, type, created_at
			FROM sensors
			WHERE device_id = $1
			ORDER BY created_at ASC, name ASC
		`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return sensors, nil
}

// ListSensorsWithLatestReading returns every sensor of a device together
// with its most recent reading, if any.
func (db *DB) ListSensorsWithLatestReading(ctx context.Context, deviceID string) ([]SensorWithLatest, error) {
	const fn = "DB:ListSensorsWithLatestReading"
	var sensors []SensorWithLatest
	err := pgxscan.Select(ctx, db.pool, &sensors, `
			SELECT
				s.id,
				s.device_id,
				s.name,
				s.unit,
				s.type,
				s.created_at,
				r.value AS latest_value,
				r.timestamp AS latest_timestamp
			FROM sensors s
			LEFT JOIN LATERAL (
				SELECT value, timestamp
				FROM readings
				WHERE sensor_id = s.id
				ORDER BY timestamp DESC, id DESC
				LIMIT 1
			) r ON true
			WHERE s.device_id = $1
			ORDER BY s.created_at ASC, s.name ASC
		`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return sensors, nil
}

// InsertReading appends a reading with a server-assigned timestamp. The
// owning device's last_seen advances via the readings insert trigger.
func (db *DB) InsertReading(ctx context.Context, sensorID string, value float64) (Reading, error) {
	const fn = "DB:InsertReading"
	var reading Reading
	err := pgxscan.Get(ctx, db.pool, &reading, `
			INSERT INTO readings (sensor_id, value)
			VALUES ($1, $2)
			RETURNING id, sensor_id, value, timestamp
		`, sensorID, value)
	if err != nil {
		return Reading{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return reading, nil
}

// ListReadings returns up to limit readings for a sensor, newest first.
// Ties on timestamp break on id so output order is stable.
func (db *DB) ListReadings(ctx context.Context, sensorID string, limit int) ([]Reading, error) {
	const fn = "DB:ListReadings"
	var readings []Reading
	err := pgxscan.Select(ctx, db.pool, &readings, `
			SELECT id, sensor_id, value, timestamp
			FROM readings
			WHERE sensor_id = $1
			ORDER BY timestamp DESC, id DESC
			LIMIT $2
		`, sensorID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return readings, nil
}

func (db *DB) CountReadings(ctx context.Context, sensorID string) (int64, error) {
	const fn = "DB:CountReadings"
	var count int64
	err := pgxscan.Get(ctx, db.pool, &count, `
			SELECT count(*) FROM readings WHERE sensor_id = $1
		`, sensorID)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return count, nil
}
