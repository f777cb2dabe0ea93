package db

import (
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"msaforge/config"
	"msaforge/interfaces"
)

type handler struct {
	cfg    config.InfluxDBConfig
	client influxdb2.Client
}

// NewHandler connects to the metrics DB. Search progress points (per
// chunk timing, fetch sizes) end up here for dashboarding long sweeps.
func NewHandler(dbConfig config.InfluxDBConfig) interfaces.DatabaseHandler {
	slog.Info("connecting to metrics DB", "url", dbConfig.URL)
	h := &handler{cfg: dbConfig}
	h.client = influxdb2.NewClient(dbConfig.URL, dbConfig.Token)
	return h
}

func (h *handler) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}, timeStamp time.Time) {
	writer := h.client.WriteAPI(h.cfg.Org, h.cfg.Bucket)
	point := influxdb2.NewPoint(measurement, tags, fields, timeStamp)
	writer.WritePoint(point)
}

func (h *handler) Flush() {
	h.client.WriteAPI(h.cfg.Org, h.cfg.Bucket).Flush()
}

func (h *handler) Close() {
	h.client.Close()
}
