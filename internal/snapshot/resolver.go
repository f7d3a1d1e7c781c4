// Package snapshot locates and streams the dated parquet files the
// collectors drop under <root>/processed/<source>/<year>/<month>/<day>/.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrNoSnapshot signals that a source has no readable snapshot. The caller
// treats it as "this source contributes zero records", never as fatal.
var ErrNoSnapshot = errors.New("no snapshot found for source")

// FindLatest returns the most recent snapshot file for a source: newest
// numeric year, then month, then day directory, then the newest-modified
// parquet file inside that day.
func FindLatest(root, source string) (string, error) {
	dir := filepath.Join(root, "processed", source)
	for i := 0; i < 3; i++ {
		next, ok := latestNumericDir(dir)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNoSnapshot, source)
		}
		dir = next
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoSnapshot, source)
	}

	var latest string
	var latestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".parquet") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Join(dir, entry.Name())
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSnapshot, source)
	}
	return latest, nil
}

// latestNumericDir picks the subdirectory with the highest numeric name,
// ignoring anything non-numeric.
func latestNumericDir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	best := -1
	var bestName string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		if n > best {
			best = n
			bestName = entry.Name()
		}
	}
	if best < 0 {
		return "", false
	}
	return filepath.Join(dir, bestName), true
}
