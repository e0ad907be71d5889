package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"coinex-screener-bot/internal/screener"
)

type Checker struct {
	screener *screener.Screener
	logger   *logrus.Logger
}

type Status struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	LastRunID string    `json:"last_run_id,omitempty"`
	LastRunAt time.Time `json:"last_run_at,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

func NewChecker(scr *screener.Screener, logger *logrus.Logger) *Checker {
	return &Checker{screener: scr, logger: logger}
}

func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := c.screener.Diagnostics()
		status := Status{
			Status:    "healthy",
			Timestamp: time.Now(),
			LastRunID: d.LastRunID,
			LastRunAt: d.LastRunAt,
			LastError: d.LastError,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(status)
	}
}

func (c *Checker) StartServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", c.Handler())
	mux.HandleFunc("/ready", c.Handler()) // Kubernetes readiness probe

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		c.logger.WithField("port", port).Info("Starting health check server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.WithError(err).Error("Health check server failed")
		}
	}()

	return server
}
