package dirstat

import (
	"strings"
	"time"
)

// NoExtension is the bucket for files without a dot in their name.
const NoExtension = "no_extension"

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Extension is the lower-cased extension without the dot, or NoExtension.
	Extension string `json:"extension" yaml:"extension"`
	// Count is the number of files with this extension.
	Count int64 `json:"count" yaml:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Latest is the most recently modified file seen during a walk.
type Latest struct {
	// Name is the base name of the file.
	Name string `json:"name" yaml:"name"`
	// Path is the root-joined path of the file.
	Path string `json:"path" yaml:"path"`
	// ModTime is the file's modification time.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// Stats holds aggregate statistics for a directory walk.
// It is owned by the caller and not modified after Run returns.
type Stats struct {
	// FileCount is the total number of files analyzed.
	FileCount int64 `json:"file_count" yaml:"file_count"`
	// Extensions lists the per-extension buckets in first-encountered order.
	Extensions []ExtStat `json:"extensions" yaml:"extensions"`
	// Latest is the most recently modified file, nil if none matched.
	Latest *Latest `json:"latest" yaml:"latest"`
	// Subdirectories are the directory names found at the depth cutoff.
	Subdirectories []string `json:"subdirectories" yaml:"subdirectories"`
	// Skipped is the number of entries that vanished before they could be read.
	Skipped int64 `json:"skipped" yaml:"skipped"`
	// Elapsed is the total time taken for analysis.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// TotalBytes returns the cumulative size of all buckets.
func (s *Stats) TotalBytes() int64 {
	var total int64

	for _, e := range s.Extensions {
		total += e.Size
	}

	return total
}

// Extension returns the bucket for ext, if any.
func (s *Stats) Extension(ext string) (ExtStat, bool) {
	for _, e := range s.Extensions {
		if e.Extension == ext {
			return e, true
		}
	}

	return ExtStat{}, false
}

// extensionOf returns the lower-cased text after the last dot of name,
// or NoExtension when there is none.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return NoExtension
	}

	return strings.ToLower(name[i+1:])
}

// collector aggregates statistics from walk callbacks.
// The walk runs a single fastwalk worker, so callbacks never overlap.
type collector struct {
	index      map[string]int
	extStats   []ExtStat
	subdirs    []string
	latest     *Latest
	fileCount  int64
	errorCount int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		index:    make(map[string]int),
		extStats: make([]ExtStat, 0),
		subdirs:  make([]string, 0),
	}
}

// addError counts an entry that disappeared between listing and stat.
func (c *collector) addError() {
	c.errorCount++
}

// addSubdir records a directory found at the depth cutoff.
func (c *collector) addSubdir(name string) {
	c.subdirs = append(c.subdirs, name)
}

// add records a file. Ties on modification time keep the first file seen, and
// times at or before the Unix epoch never become the latest.
func (c *collector) add(name, path string, size int64, modTime time.Time) {
	c.fileCount++

	ext := extensionOf(name)

	i, ok := c.index[ext]
	if !ok {
		i = len(c.extStats)
		c.index[ext] = i
		c.extStats = append(c.extStats, ExtStat{Extension: ext})
	}

	c.extStats[i].Count++
	c.extStats[i].Size += size

	floor := time.Unix(0, 0)
	if c.latest != nil {
		floor = c.latest.ModTime
	}

	if modTime.After(floor) {
		c.latest = &Latest{Name: name, Path: path, ModTime: modTime}
	}
}

// finalize produces the final Stats from the collected data.
func (c *collector) finalize() *Stats {
	return &Stats{
		FileCount:      c.fileCount,
		Extensions:     c.extStats,
		Latest:         c.latest,
		Subdirectories: c.subdirs,
		Skipped:        c.errorCount,
	}
}
