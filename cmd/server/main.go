// Package main is the entry point for the agent service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-agent/internal/adapters/http"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/clients/brave"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/clients/openai"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/sinks"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen11/todo-agent/internal/app"
	"github.com/jsamuelsen11/todo-agent/internal/app/emitter"
	"github.com/jsamuelsen11/todo-agent/internal/app/tools"
	"github.com/jsamuelsen11/todo-agent/internal/platform/config"
	"github.com/jsamuelsen11/todo-agent/internal/platform/health"
	"github.com/jsamuelsen11/todo-agent/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-agent/internal/platform/logging"
	"github.com/jsamuelsen11/todo-agent/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-agent/internal/platform/tokencount"
	"github.com/jsamuelsen11/todo-agent/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	sinkShutdownTimeout   = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// emitterWorkers bounds concurrent secondary-sink deliveries per span
	// event. The memory sink is primary and always delivered synchronously.
	emitterWorkers = 4

	modelClientName  = "model-httpclient"
	searchClientName = "search-httpclient"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry, sinks.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	memory := sinks.NewMemory(cfg.Sinks.Memory.Capacity)
	sinkList, closeSinks, err := buildSinks(ctx, cfg, memory)
	if err != nil {
		return fmt.Errorf("initializing trace sinks: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, sinkList)
	do.ProvideValue[ports.TraceReader](injector, memory)
	do.ProvideValue[ports.SpanStream](injector, memory)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, modelClientName))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, searchClientName))
	registry.Register(jsonfile.NewHealth(cfg.Storage.Dir))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeSinks(ctx, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests first so in-flight turns finish
	// emitting spans before the sinks go away.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	sinkCtx, sinkCancel := context.WithTimeout(context.Background(), sinkShutdownTimeout)
	defer sinkCancel()
	closeSinks(sinkCtx, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// buildSinks assembles the span sink list in delivery order: the in-memory
// ring first (primary, backs the traces API), then the optional file, sqlite,
// and OTel sinks. The returned close function releases everything that holds
// a file handle, database, or exporter.
func buildSinks(ctx context.Context, cfg *config.Config, memory *sinks.Memory) ([]ports.SpanSink, func(context.Context, *slog.Logger), error) {
	list := []ports.SpanSink{memory}
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

	if cfg.Telemetry.Enabled {
		var (
			o   *sinks.OTel
			err error
		)
		if cfg.Telemetry.Exporter == "otlp" {
			o, err = sinks.NewOTLP(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint)
		} else {
			o, err = sinks.NewStdout(cfg.Telemetry.ServiceName)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("otel sink: %w", err)
		}
		list = append(list, o)
		closers = append(closers, o.Close)
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
	do.ProvideNamed(injector, modelClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Model.Client, "openai", metrics, logger), nil
	})

	do.ProvideNamed(injector, searchClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Search.Client, "brave-search", metrics, logger), nil
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
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		sinkList := do.MustInvoke[[]ports.SpanSink](i)
		return emitter.New(sinkList, emitterWorkers, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AgentService, error) {
		sessions := do.MustInvoke[ports.SessionStore](i)
		model := do.MustInvoke[ports.ModelClient](i)
		registry := do.MustInvoke[ports.ToolRegistry](i)
		traceEmitter := do.MustInvoke[ports.TraceEmitter](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewAgentService(app.AgentConfig{
			MaxToolRounds:    cfg.Agent.MaxToolRounds,
			MaxUserTurns:     cfg.Agent.MaxUserTurns,
			MaxHistoryTokens: cfg.Agent.MaxHistoryTokens,
			ModelName:        cfg.Model.Name,
			StrictSpans:      cfg.Agent.StrictSpans,
		}, sessions, model, registry, traceEmitter,
			tokencount.NewCounter(cfg.Model.Name), metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ChatHandler, error) {
		agent := do.MustInvoke[ports.AgentService](i)
		return handlers.NewChatHandler(agent), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TracesHandler, error) {
		reader := do.MustInvoke[ports.TraceReader](i)
		stream := do.MustInvoke[ports.SpanStream](i)
		return handlers.NewTracesHandler(reader, stream), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		chatH := do.MustInvoke[*handlers.ChatHandler](i)
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		tracesH := do.MustInvoke[*handlers.TracesHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(chatH, todoH, tracesH, healthH,
			middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
