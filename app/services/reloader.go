package services

import (
	"log"
	"os"
	"time"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
)

// StartDatasetReloader starts the background watcher that reloads the store
// whenever the dataset file changes on disk. Advisors drop updated exports
// next to the server; the running process picks them up without a restart.
func StartDatasetReloader(store *dataset.Store, interval time.Duration) {
	go func() {
		log.Println("Dataset reloader started...")
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var lastMod time.Time
		if info, err := os.Stat(store.Path()); err == nil {
			lastMod = info.ModTime()
		}

		for range ticker.C {
			info, err := os.Stat(store.Path())
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}

			if err := store.Load(); err != nil {
				log.Printf("Error reloading dataset: %v", err)
				continue
			}
			lastMod = info.ModTime()
			log.Printf("Dataset reloaded: %d student records", store.Len())
		}
	}()
}
