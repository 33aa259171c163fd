package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"cx-workbench-go/internal/logger"
	"cx-workbench-go/internal/store"
	"cx-workbench-go/internal/workbench"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "cx-workbench-go").Info("starting service")

	st, err := openStore(log)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}
	log.WithField("total_interactions", st.Len()).Info("dataset loaded")

	settleDelay := time.Duration(envInt("SEARCH_SETTLE_MS", 1500)) * time.Millisecond
	sessionTTL := time.Duration(envInt("SESSION_TTL_MIN", 120)) * time.Minute
	manager := workbench.NewManager(st, sessionTTL, settleDelay, log.WithComponent("workbench"))

	mux := newMux(st, manager)

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// openStore picks the dataset source: remote URL, then local file, then the
// built-in demo dataset.
func openStore(log *logger.Logger) (*store.Store, error) {
	if url := os.Getenv("DATASET_URL"); url != "" {
		log.WithField("dataset_url", url).Info("loading dataset from URL")
		return store.FetchURL(url)
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		log.WithField("dataset_path", path).Info("loading dataset from file")
		return store.LoadFile(path)
	}
	log.Info("using built-in dataset")
	return store.Default(), nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
