package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"iot-telemetry-backend/internal/config"
	"iot-telemetry-backend/internal/simulator"
)

// Runs a batch of simulated sensors against a live service until
// interrupted. Usage:
//
//	go run ./scripts/simulate <device_id> <device_key> [base_url]
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if len(os.Args) < 3 {
		fmt.Println("usage: simulate <device_id> <device_key> [base_url]")
		os.Exit(1)
	}
	deviceID := os.Args[1]
	deviceKey := os.Args[2]
	baseURL := "http://localhost:8080"
	if len(os.Args) > 3 {
		baseURL = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	sim := simulator.New(simulator.Config{
		Submitter: simulator.NewHTTPSubmitter(baseURL),
		Period:    cfg.SimulatorPeriod,
	})

	specs := []simulator.SensorSpec{
		{DeviceID: deviceID, DeviceKey: deviceKey, SensorID: "sim-temperature", Name: "temperature", Type: "temperature", Unit: "°C"},
		{DeviceID: deviceID, DeviceKey: deviceKey, SensorID: "sim-humidity", Name: "humidity", Type: "humidity", Unit: "%"},
		{DeviceID: deviceID, DeviceKey: deviceKey, SensorID: "sim-co2", Name: "co2", Type: "co2", Unit: "ppm"},
	}
	for _, spec := range specs {
		sim.Start(ctx, spec)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	sim.Shutdown()
}
