package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// NoLogsMessage is returned by TailLogs when the log file has never been
// created. A missing log is an expected steady state before the first start,
// not an error.
const NoLogsMessage = "No logs available yet. Start the gateway to see logs."

// DefaultTailLines is the log window used when the caller passes a
// non-positive line count.
const DefaultTailLines = 100

// TailLogs reads the log file and returns its last maxLines lines in
// original order, joined by newlines. The whole file is read at once; the
// gateway log is diagnostic-sized, not a stream. Reads race informally with
// the daemon appending; a torn final line is tolerated.
func TailLogs(path string, maxLines int) (string, error) {
	if maxLines <= 0 {
		maxLines = DefaultTailLines
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NoLogsMessage, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read log file: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return "", nil
	}

	lines := strings.Split(content, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n"), nil
}

// ClearLogs truncates the log file to empty. A non-existent file is a
// successful no-op. Truncating while the daemon holds the file open for
// append can interleave with writes; logs are diagnostic, not authoritative,
// so this is accepted.
func ClearLogs(path string) error {
	err := os.Truncate(path, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	return nil
}

// FollowLogs streams appended log data to w until ctx is cancelled, in the
// manner of tail -f. The file's parent directory is watched rather than the
// file itself so a restart (which truncates and recreates the log) keeps the
// follow alive; truncation resets the read offset to the new end of file.
//
// Existing content is not replayed; callers wanting a backlog print
// TailLogs output first.
func FollowLogs(ctx context.Context, path string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create log watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}

	offset := currentSize(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			offset, err = copyNewData(path, offset, w)
			if err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("log watcher error: %w", err)
		}
	}
}

// currentSize returns the file's size, or 0 when it cannot be determined.
func currentSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// copyNewData writes everything past offset to w and returns the new offset.
// A shrunken file means the log was truncated (gateway restart or clear);
// reading restarts from the beginning.
func copyNewData(path string, offset int64, w io.Writer) (int64, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return offset, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return offset, fmt.Errorf("failed to stat log file: %w", err)
	}
	if info.Size() < offset {
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("failed to seek log file: %w", err)
	}

	n, err := io.Copy(w, f)
	if err != nil {
		return offset, fmt.Errorf("failed to stream log data: %w", err)
	}
	return offset + n, nil
}
