package domain

import (
	"math"
	"strconv"
	"time"
)

// CacheStatistics summarizes the files under a cache root at ComputedAt.
type CacheStatistics struct {
	FileCount      int64     `json:"file_count"`
	TotalSizeBytes int64     `json:"total_size_bytes"`
	CachePath      string    `json:"cache_path"`
	ComputedAt     time.Time `json:"computed_at"`
}

// Age returns how long ago the statistics were computed.
func (s CacheStatistics) Age(now time.Time) time.Duration {
	return now.Sub(s.ComputedAt)
}

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n with binary units, rounded to two decimals.
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}
