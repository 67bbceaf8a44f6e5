package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// tailLines returns at most maxLines from the end of r. Memory is bounded by
// maxLines, not by the size of r.
func tailLines(r io.Reader, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return append([]string(nil), ring[:count]...), nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[idx:]...)
	return append(lines, ring[:idx]...), nil
}

// Follower incrementally reads a growing log file, keeping the last maxLines
// complete lines. It is not safe for concurrent use.
type Follower struct {
	path     string
	maxLines int

	ident   os.FileInfo // identity of the file being followed; nil until seeded
	offset  int64
	partial string
	lines   []string
}

// NewFollower returns a follower for path. maxLines <= 0 uses 500.
func NewFollower(path string, maxLines int) *Follower {
	if maxLines <= 0 {
		maxLines = 500
	}
	return &Follower{path: path, maxLines: maxLines}
}

// Poll returns a copy of the retained lines. The first call, and the first
// call after the file was truncated or replaced, seeds from the last maxLines
// of the file; later calls only read what was appended.
func (f *Follower) Poll() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.reset()
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if f.ident == nil || !os.SameFile(f.ident, info) || info.Size() < f.offset {
		f.reset()
		if err := f.seed(file, info); err != nil {
			return nil, err
		}
		return append([]string(nil), f.lines...), nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(file, info.Size()-f.offset))
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	f.offset += int64(len(data))

	parts := strings.Split(f.partial+string(data), "\n")
	f.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		f.lines = append(f.lines, strings.TrimSuffix(line, "\r"))
	}
	if over := len(f.lines) - f.maxLines; over > 0 {
		f.lines = append([]string(nil), f.lines[over:]...)
	}

	return append([]string(nil), f.lines...), nil
}

// seed loads the tail of the first info.Size() bytes and positions the offset
// at that size. A final line without a newline is held back as partial.
func (f *Follower) seed(file *os.File, info os.FileInfo) error {
	size := info.Size()
	lines, err := tailLines(io.LimitReader(file, size), f.maxLines)
	if err != nil {
		return err
	}

	if n := len(lines); n > 0 {
		last := make([]byte, 1)
		if _, err := file.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("read log: %w", err)
		}
		if last[0] != '\n' {
			f.partial = lines[n-1]
			lines = lines[:n-1]
		}
	}

	f.ident = info
	f.offset = size
	f.lines = lines
	return nil
}

func (f *Follower) reset() {
	f.ident = nil
	f.offset = 0
	f.partial = ""
	f.lines = nil
}
