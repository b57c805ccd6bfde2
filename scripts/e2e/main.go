package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// End-to-end scenario against a running service: create a device, POST
// the same two-entry batch twice, then verify one sensor exists with
// four readings and each response counted two inserts.
func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	// 1. Create a device.
	devicePayload, _ := json.Marshal(map[string]string{
		"user_id":     "e2e-user",
		"name":        "e2e device",
		"description": "end-to-end scenario device",
	})
	resp, err := http.Post(baseURL+"/devices", "application/json", bytes.NewBuffer(devicePayload))
	if err != nil {
		panic(err)
	}
	var device struct {
		ID     string `json:"id"`
		APIKey string `json:"api_key"`
	}
	mustDecode(resp, http.StatusCreated, &device)
	fmt.Println("Created device:", device.ID)

	// 2. POST the same batch twice.
	batch, _ := json.Marshal(map[string]any{
		"device_key": device.APIKey,
		"readings": []map[string]any{
			{"sensor_name": "temp", "value": 21.5},
			{"sensor_name": "temp", "value": 22.0},
		},
	})
	for i := 0; i < 2; i++ {
		resp, err := http.Post(baseURL+"/ingest", "application/json", bytes.NewReader(batch))
		if err != nil {
			panic(err)
		}
		var result struct {
			Success          bool   `json:"success"`
			DeviceID         string `json:"device_id"`
			ReadingsInserted int    `json:"readings_inserted"`
		}
		mustDecode(resp, http.StatusOK, &result)
		if result.ReadingsInserted != 2 {
			panic(fmt.Sprintf("POST %d: expected 2 readings inserted, got %d", i+1, result.ReadingsInserted))
		}
		fmt.Printf("POST %d: inserted %d readings\n", i+1, result.ReadingsInserted)
	}

	// 3. Exactly one sensor for the device.
	resp, err = http.Get(baseURL + "/devices/" + device.ID + "/sensors")
	if err != nil {
		panic(err)
	}
	var sensors []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	mustDecode(resp, http.StatusOK, &sensors)
	if len(sensors) != 1 || sensors[0].Name != "temp" {
		panic(fmt.Sprintf("expected exactly one sensor named temp, got %+v", sensors))
	}
	fmt.Println("Sensor created once:", sensors[0].ID)

	// 4. Four readings total.
	resp, err = http.Get(baseURL + "/sensors/" + sensors[0].ID + "/readings?limit=10")
	if err != nil {
		panic(err)
	}
	var readings []struct {
		Value float64 `json:"value"`
	}
	mustDecode(resp, http.StatusOK, &readings)
	if len(readings) != 4 {
		panic(fmt.Sprintf("expected 4 readings, got %d", len(readings)))
	}
	fmt.Println("Reading count:", len(readings))

	// 5. Unknown key is rejected.
	badBatch, _ := json.Marshal(map[string]any{
		"device_key": "bad",
		"readings":   []map[string]any{{"sensor_name": "temp", "value": 1.0}},
	})
	resp, err = http.Post(baseURL+"/ingest", "application/json", bytes.NewReader(badBatch))
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		panic(fmt.Sprintf("expected 401 for bad key, got %d", resp.StatusCode))
	}
	fmt.Println("Bad key rejected with 401")

	fmt.Println("E2E scenario passed")
}

func mustDecode(resp *http.Response, wantStatus int, v any) {
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		panic(fmt.Sprintf("expected status %d, got %d", wantStatus, resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		panic(err)
	}
}
