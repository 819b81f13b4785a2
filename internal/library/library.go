// Package library lists and watches the export directory for Expert
// Advisor files the user has saved. It only ever reads the directory; the
// files themselves are the user's, not an application store.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry describes one exported .mq5 file.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Scan returns all .mq5 files directly under dir, newest first. A missing
// directory is an empty library, not an error.
func Scan(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading library directory: %w", err)
	}

	var entries []Entry
	for _, item := range items {
		if item.IsDir() || !strings.HasSuffix(strings.ToLower(item.Name()), ".mq5") {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    item.Name(),
			Path:    filepath.Join(dir, item.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}
