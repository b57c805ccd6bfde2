package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iot-telemetry-backend/internal/config"
	"iot-telemetry-backend/internal/db"
	"iot-telemetry-backend/internal/feed"
	"iot-telemetry-backend/internal/liveview"
)

// Mounts a live-view subscriber for one device and dumps the refreshed
// view whenever a relevant change event arrives. Usage:
//
//	go run ./scripts/watch <device_id>
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if len(os.Args) < 2 {
		fmt.Println("usage: watch <device_id>")
		os.Exit(1)
	}
	deviceID := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	sub := liveview.New(liveview.Config{
		DeviceID: deviceID,
		Loader:   store,
		Reader:   feed.NewReader(cfg.Brokers(), cfg.FeedTopic),
	})
	defer sub.Close()

	if err := sub.Load(ctx); err != nil {
		panic(err)
	}
	dump(sub.View())

	go sub.Run(ctx)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		last := ""
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				view := sub.View()
				if cur := fingerprint(view); cur != last {
					last = cur
					dump(view)
				}
			}
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}

func dump(view liveview.View) {
	out, _ := json.MarshalIndent(view, "", "  ")
	fmt.Println(string(out))
}

func fingerprint(view liveview.View) string {
	out, _ := json.Marshal(view)
	return string(out)
}
