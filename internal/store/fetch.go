package store

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"cx-workbench-go/internal/logger"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

// FetchURL downloads a dataset file over HTTP with exponential backoff and
// loads it like LoadFile. The file type is taken from the URL path extension.
func FetchURL(url string) (*Store, error) {
	log := logger.New().WithComponent("store.fetch").WithField("url", url)
	log.Info("fetching dataset")

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	var body []byte
	operation := func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			log.WithError(err).Warn("dataset fetch failed, retrying")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			err := fmt.Errorf("server error: %s", resp.Status)
			log.WithError(err).Warn("dataset fetch failed, retrying")
			return err
		}
		if resp.StatusCode >= 300 {
			// client errors will not heal on retry
			return backoff.Permanent(fmt.Errorf("dataset fetch: %s", resp.Status))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}

	tmp, err := os.CreateTemp("", "dataset-*"+strings.ToLower(path.Ext(url)))
	if err != nil {
		return nil, fmt.Errorf("stage dataset: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage dataset: %w", err)
	}
	tmp.Close()

	return LoadFile(tmp.Name())
}
