package dirstat

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirfetch/internal/logger"
)

// Options configures a directory walk.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Filter selects the entries that are counted.
	Filter Filter
	// Debug receives the walk trace.
	Debug logger.Logger
	// Warn receives notices about entries that vanished during the walk.
	Warn logger.Logger
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// vanished handles an entry that disappeared between listing and stat.
// It reports whether err was such a condition.
func vanished(c *collector, warn logger.Logger, path string, err error) bool {
	if !errors.Is(err, fs.ErrNotExist) {
		return false
	}

	c.addError()
	warn.Printf("File not found: %s.\nError: %v\n", path, err)

	return true
}

// Run performs directory analysis and returns aggregated statistics.
//
// An entry's depth is the number of path elements below opt.Path, so a
// directory at depth opt.Filter.MaxDepth+1 is a child of the cutoff directory:
// it is recorded in Stats.Subdirectories and not descended into. Files are
// processed only inside directories at or above the cutoff.
//
// The walk uses a single fastwalk worker, so directory and extension order
// follow the order the filesystem reports entries in. It can be cancelled via
// ctx. A missing or non-directory root is an error; entries that vanish during
// the walk are skipped.
//
//nolint:gocognit,funlen,cyclop // Single callback keeps the filter order readable.
func Run(ctx context.Context, opt Options) (*Stats, error) {
	log := opt.Debug

	if opt.Path == "" {
		opt.Path = "."
	}

	root := filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	filter := opt.Filter
	collector := newCollector()

	log.Printf("[debug]: root %s, depth %d, hidden %t\n", root, filter.MaxDepth, filter.IncludeHidden)
	log.Printf("[debug]: exclude globs:\n")

	for _, p := range filter.Excludes {
		log.Printf("[debug]:   - %s\n", p)
	}

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !vanished(collector, opt.Warn, path, err) {
				log.Printf("[debug]: error accessing path %s: %v\n", path, err)
			}

			return nil
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if path == root {
			return nil
		}

		name := d.Name()
		depth := calculateDepth(path, root)
		isDir := d.IsDir()

		if filter.hidden(name) {
			if isDir {
				log.Printf("[debug]: skipping hidden directory: %s\n", path)

				return filepath.SkipDir
			}

			return nil
		}

		var info fs.FileInfo

		if d.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(path)
			if err != nil {
				if !vanished(collector, opt.Warn, path, err) {
					log.Printf("[debug]: error resolving link %s: %v\n", path, err)
				}

				return nil
			}

			isDir = info.IsDir()
		}

		if isDir {
			if depth == filter.MaxDepth+1 {
				collector.addSubdir(name)
			}

			if depth > filter.MaxDepth {
				log.Printf("[debug]: skipping directory (beyond depth %d): %s\n", filter.MaxDepth, path)

				return filepath.SkipDir
			}

			return nil
		}

		if depth > filter.MaxDepth+1 {
			return nil
		}

		if pattern := filter.excluded(name); pattern != "" {
			log.Printf("[debug]: excluding file: %s\n", filepath.ToSlash(path))
			log.Printf("	 matched glob: %s\n", pattern)

			return nil
		}

		if info == nil {
			if !d.Type().IsRegular() {
				return nil
			}

			info, err = d.Info()
			if err != nil {
				if !vanished(collector, opt.Warn, path, err) {
					log.Printf("[debug]: error reading %s: %v\n", path, err)
				}

				return nil
			}
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		collector.add(name, path, info.Size(), info.ModTime())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	stats := collector.finalize()

	stats.Elapsed = time.Since(start)

	log.Printf("[debug]: %s files, %s in %d extensions (%d skipped) in %v\n",
		humanize.Comma(stats.FileCount),
		humanize.IBytes(uint64(stats.TotalBytes())), //nolint:gosec // Sizes are never negative
		len(stats.Extensions), stats.Skipped, stats.Elapsed)

	return stats, nil
}
