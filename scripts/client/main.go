package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Sample device: pushes one batch of readings at the ingestion endpoint.
// Usage: go run ./scripts/client <device_key> [base_url]
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: client <device_key> [base_url]")
		os.Exit(1)
	}
	deviceKey := os.Args[1]
	baseURL := "http://localhost:8080"
	if len(os.Args) > 2 {
		baseURL = os.Args[2]
	}

	payload, _ := json.Marshal(map[string]any{
		"device_key": deviceKey,
		"readings": []map[string]any{
			{"sensor_name": "temperature", "value": 21.5},
			{"sensor_name": "humidity", "value": 48.0},
			{"sensor_name": "co2", "value": 612.0},
		},
	})
	fmt.Println("Payload:", string(payload))

	resp, err := http.Post(baseURL+"/ingest", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println("POST /ingest status:", resp.Status)
	fmt.Println("POST /ingest body:", string(body))
}
