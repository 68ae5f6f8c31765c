package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// seedItem is the wire shape of one entry in a seed document. IDs and
// timestamps are optional; the service assigns what is missing.
type seedItem struct {
	ID          int    `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Project     string `json:"project"     yaml:"project"`
	Status      string `json:"status"      yaml:"status"`
}

// runSeed replaces the stored todo collection with the items in the given
// document. Bare file names resolve under the data directory, so
// "agent seed starter.yaml" works from anywhere.
func runSeed(ctx context.Context, todos ports.TodoService, dataDir, path string, out io.Writer) error {
	resolved := resolveSeedPath(dataDir, path)

	items, err := loadSeedDocument(resolved)
	if err != nil {
		return err
	}

	if err := todos.Seed(ctx, items); err != nil {
		return fmt.Errorf("seeding todos: %w", err)
	}

	fmt.Fprintf(out, "seeded %d todos from %s\n", len(items), resolved)
	return nil
}

func resolveSeedPath(dataDir, path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if filepath.Base(path) == path {
		candidate := filepath.Join(dataDir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

func loadSeedDocument(path string) ([]todo.Todo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed document: %w", err)
	}

	var entries []seedItem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	items := make([]todo.Todo, len(entries))
	for i, e := range entries {
		items[i] = todo.Todo{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Project:     e.Project,
			Status:      todo.Status(e.Status),
		}
	}
	return items, nil
}
