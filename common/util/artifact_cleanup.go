package util

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const cleanupInterval = time.Hour

var cleanupExtensions = map[string]bool{
	".jpg": true,
	".png": true,
	".pdf": true,
}

// StartArtifactCleanupJob starts a background job that removes generated
// certificates older than retention. It returns a stop function.
func StartArtifactCleanupJob(dir string, retention time.Duration) func() {
	done := make(chan struct{})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in artifact cleanup job", "panic", r)
			}
		}()

		slog.Info("Artifact cleanup job: Initial run starting")
		runArtifactCleanup(dir, retention)

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				slog.Info("Artifact cleanup job: Scheduled run starting")
				runArtifactCleanup(dir, retention)
			case <-done:
				return
			}
		}
	}()

	slog.Info("Artifact cleanup job started successfully", "dir", dir, "retention", retention.String())
	return func() { close(done) }
}

func runArtifactCleanup(dir string, retention time.Duration) {
	startTime := time.Now()

	removed, err := CleanupExpiredArtifacts(dir, retention, startTime)
	if err != nil {
		slog.Error("Artifact cleanup failed", "error", err, "duration", time.Since(startTime))
		return
	}

	slog.Info("Artifact cleanup completed", "removed", removed, "maxAge", retention.String(), "duration", time.Since(startTime))
}

// CleanupExpiredArtifacts deletes cert-* images and documents in dir that were
// last modified before now minus maxAge. A missing dir is not an error.
func CleanupExpiredArtifacts(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "cert-") || !cleanupExtensions[filepath.Ext(name)] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Warn("Failed to stat artifact", "file", name, "error", err)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			slog.Warn("Failed to remove expired artifact", "file", name, "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}
