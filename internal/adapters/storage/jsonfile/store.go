// Package jsonfile persists agent state as JSON documents on the local
// filesystem: the todo collection in todos.json and one session_<key>.json
// per conversation. Every write replaces the whole document through a
// temp-file-and-rename sequence, so a crash mid-write leaves the previous
// document intact. Failures are wrapped in domain.ErrStorage.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
)

// filePerm is the mode for created documents. The data directory is
// single-user state, not configuration to share.
const filePerm = 0o600

// document is one JSON file with load/save/reset semantics. A mutex
// serializes access per document; the process is the only writer of the
// data directory.
type document struct {
	path string
	mu   sync.Mutex
}

// load decodes the document into v. It reports found=false when the file
// does not exist, leaving v untouched.
func (d *document) load(ctx context.Context, v any) (found bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("load %s: %v: %w", d.base(), err, domain.ErrStorage)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %v: %w", d.base(), err, domain.ErrStorage)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %v: %w", d.base(), err, domain.ErrStorage)
	}
	return true, nil
}

// save writes v as indented JSON to a temp file in the same directory and
// renames it over the document. Rename within one directory is atomic on
// POSIX filesystems.
func (d *document) save(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save %s: %v: %w", d.base(), err, domain.ErrStorage)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %v: %w", d.base(), err, domain.ErrStorage)
	}
	data = append(data, '\n')

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %v: %w", dir, err, domain.ErrStorage)
	}

	tmp, err := os.CreateTemp(dir, d.base()+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %v: %w", d.base(), err, domain.ErrStorage)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %v: %w", d.base(), err, domain.ErrStorage)
	}

	if err := os.Rename(tmpPath, d.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %v: %w", d.base(), err, domain.ErrStorage)
	}
	return nil
}

// reset removes the document. A missing document is not an error.
func (d *document) reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("reset %s: %v: %w", d.base(), err, domain.ErrStorage)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %v: %w", d.base(), err, domain.ErrStorage)
	}
	return nil
}

func (d *document) base() string {
	return filepath.Base(d.path)
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(filePerm); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
