package system

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/sirupsen/logrus"
)

// SceneExt is the extension of Maya ASCII scenes.
const SceneExt = ".ma"

// FindLatest returns the most recently modified file in dir whose name ends
// with one of exts, compared case-insensitively.
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to list %s", dir)
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExt(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", errors.Errorf("no %s files found in %s", strings.Join(exts, ", "), dir)
	}

	return latestFile, nil
}

// FindLatestScene picks the newest .ma file in dir.
func FindLatestScene(dir string) (string, error) {
	return FindLatest(dir, SceneExt)
}

func hasExt(name string, exts []string) bool {
	name = strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// DefaultWorkers is the number of physical cores, or logical ones when the
// platform does not report physical cores.
func DefaultWorkers() int {
	n, err := cpu.Counts(false)
	if err != nil || n < 1 {
		logrus.Debugf("physical core count unavailable (%v), using %d logical cores", err, runtime.NumCPU())
		return runtime.NumCPU()
	}
	return n
}

// Workers resolves a configured worker count, where zero or less means
// DefaultWorkers.
func Workers(configured int) int {
	if configured > 0 {
		return configured
	}
	return DefaultWorkers()
}
