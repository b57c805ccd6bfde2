package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"iot-telemetry-backend/internal/api"
)

var (
	ErrEncodeBatch = errors.New("error encoding reading batch")
	ErrSubmitBatch = errors.New("error submitting reading batch")
	ErrRejected    = errors.New("ingestion endpoint rejected batch")
)

// HTTPSubmitter drives the same ingestion contract a hardware device
// uses, so simulated traffic is a drop-in substitute for the real thing.
type HTTPSubmitter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (h *HTTPSubmitter) Submit(ctx context.Context, deviceKey, sensorName string, value float64) error {
	const fn = "HTTPSubmitter:Submit"
	payload := api.IngestRequest{
		DeviceKey: &deviceKey,
		Readings: &[]api.IngestEntry{
			{SensorName: &sensorName, Value: &value},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEncodeBatch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/ingest", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrSubmitBatch, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrSubmitBatch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%s:%w: status %d: %s", fn, ErrRejected, resp.StatusCode, apiErr.Error)
	}
	return nil
}
