// Package main is the command-line interface to the agent: an interactive
// chat REPL plus management subcommands for the stored documents.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/clients/brave"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/clients/openai"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/sinks"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen11/todo-agent/internal/app"
	"github.com/jsamuelsen11/todo-agent/internal/app/emitter"
	"github.com/jsamuelsen11/todo-agent/internal/app/tools"
	"github.com/jsamuelsen11/todo-agent/internal/platform/config"
	"github.com/jsamuelsen11/todo-agent/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-agent/internal/platform/logging"
	"github.com/jsamuelsen11/todo-agent/internal/platform/tokencount"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

const (
	sinkShutdownTimeout = 5 * time.Second

	// emitterWorkers bounds concurrent secondary-sink deliveries per span
	// event.
	emitterWorkers = 4

	modelClientName  = "model-httpclient"
	searchClientName = "search-httpclient"
)

const usageText = `Usage: agent [command]

Commands:
  chat         interactive chat session (default)
  reset        clear the todo collection and the default session history
  seed <file>  replace the todo collection from a JSON or YAML document

The APP_PROFILE environment variable selects the config profile
(local, dev, qa, prod). Model and search credentials come from
APP_MODEL_API_KEY and APP_SEARCH_API_KEY or a .env file.
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// Trace sinks. The CLI skips the in-memory ring (nothing serves it) and
	// OTel; spans still land in the file and sqlite sinks when enabled.
	sinkList, closeSinks, err := buildSinks(cfg)
	if err != nil {
		return fmt.Errorf("initializing trace sinks: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), sinkShutdownTimeout)
		defer cancel()
		closeSinks(ctx, logger)
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, sinkList)
	registerDependencies(injector, cfg, logger)

	command := "chat"
	if len(args) > 0 {
		command = args[0]
	}

	ctx := context.Background()

	switch command {
	case "chat":
		agent, err := do.Invoke[ports.AgentService](injector)
		if err != nil {
			return fmt.Errorf("wiring agent: %w", err)
		}
		todos := do.MustInvoke[ports.TodoService](injector)
		historyPath := filepath.Join(cfg.Storage.Dir, "repl.history")
		return runChat(ctx, agent, todos, historyPath, os.Stdout, os.Stderr)

	case "reset":
		agent, err := do.Invoke[ports.AgentService](injector)
		if err != nil {
			return fmt.Errorf("wiring agent: %w", err)
		}
		todos := do.MustInvoke[ports.TodoService](injector)
		return runReset(ctx, agent, todos, os.Stdout)

	case "seed":
		if len(args) < 2 {
			return errors.New("seed requires a document path (JSON or YAML)")
		}
		todos, err := do.Invoke[ports.TodoService](injector)
		if err != nil {
			return fmt.Errorf("wiring todo service: %w", err)
		}
		return runSeed(ctx, todos, cfg.Storage.Dir, args[1], os.Stdout)

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// buildSinks assembles the opt-in span sinks for CLI runs. Returns the list
// in delivery order and a close function for everything holding a file
// handle or database.
func buildSinks(cfg *config.Config) ([]ports.SpanSink, func(context.Context, *slog.Logger), error) {
	var list []ports.SpanSink
	var closers []func(context.Context) error

	if cfg.Sinks.File.Enabled {
		f, err := sinks.NewFile(cfg.Sinks.File.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("file sink: %w", err)
		}
		list = append(list, f)
		closers = append(closers, func(context.Context) error { return f.Close() })
	}

	if cfg.Sinks.SQLite.Enabled {
		s, err := sinks.NewSQLite(cfg.Sinks.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite sink: %w", err)
		}
		list = append(list, s)
		closers = append(closers, func(context.Context) error { return s.Close() })
	}

	closeAll := func(ctx context.Context, logger *slog.Logger) {
		for _, closeSink := range closers {
			if err := closeSink(ctx); err != nil {
				logger.Error("sink shutdown error", slog.Any("error", err))
			}
		}
	}
	return list, closeAll, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, modelClientName, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Model.Client, "openai", nil, logger), nil
	})

	do.ProvideNamed(injector, searchClientName, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Search.Client, "brave-search", nil, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ModelClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, modelClientName)
		return openai.New(openai.Config{
			APIKey:  cfg.Model.APIKey,
			BaseURL: cfg.Model.Client.BaseURL,
			Model:   cfg.Model.Name,
		}, client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SearchClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, searchClientName)
		return brave.New(client, cfg.Search.APIKey, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TodoStore, error) {
		return jsonfile.NewTodoStore(cfg.Storage.Dir), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.SessionStore, error) {
		return jsonfile.NewSessionStore(cfg.Storage.Dir), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[ports.TodoStore](i)
		return app.NewTodoService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ToolRegistry, error) {
		todos := do.MustInvoke[ports.TodoService](i)
		search := do.MustInvoke[ports.SearchClient](i)
		return tools.NewRegistry(logger,
			tools.NewCreateItem(todos),
			tools.NewListItems(todos),
			tools.NewUpdateItem(todos),
			tools.NewDeleteItem(todos),
			tools.NewWebSearch(search),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TraceEmitter, error) {
		sinkList := do.MustInvoke[[]ports.SpanSink](i)
		return emitter.New(sinkList, emitterWorkers, nil, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AgentService, error) {
		sessions := do.MustInvoke[ports.SessionStore](i)
		model := do.MustInvoke[ports.ModelClient](i)
		registry := do.MustInvoke[ports.ToolRegistry](i)
		traceEmitter := do.MustInvoke[ports.TraceEmitter](i)

		return app.NewAgentService(app.AgentConfig{
			MaxToolRounds:    cfg.Agent.MaxToolRounds,
			MaxUserTurns:     cfg.Agent.MaxUserTurns,
			MaxHistoryTokens: cfg.Agent.MaxHistoryTokens,
			ModelName:        cfg.Model.Name,
			StrictSpans:      cfg.Agent.StrictSpans,
		}, sessions, model, registry, traceEmitter,
			tokencount.NewCounter(cfg.Model.Name), nil, logger), nil
	})
}
