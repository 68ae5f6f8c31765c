package jsonfile

import (
	"context"
	"fmt"
	"os"

	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Health)(nil)

// Health reports whether the data directory is usable. Registered with the
// health registry so readiness fails when the disk is gone or read-only.
type Health struct {
	dir string
}

// NewHealth creates a checker for the given data directory.
func NewHealth(dir string) *Health {
	return &Health{dir: dir}
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (h *Health) Name() string {
	return "storage"
}

// HealthCheck verifies the data directory exists and accepts writes by
// creating and removing a probe file. The probe is the same operation a
// document save performs, so a passing check means saves can succeed.
func (h *Health) HealthCheck(_ context.Context) error {
	info, err := os.Stat(h.dir)
	if err != nil {
		return fmt.Errorf("storage: data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage: %s is not a directory", h.dir)
	}

	probe, err := os.CreateTemp(h.dir, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("storage: data directory not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}
