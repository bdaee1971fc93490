// Command andy runs the Chartwell decision-support API: demand
// forecasting, reorder recommendations, document retrieval, and the
// support answer composer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chartwell/andy/internal/adapters/docstore"
	"github.com/chartwell/andy/internal/adapters/knowledge"
	"github.com/chartwell/andy/internal/adapters/pvservice"
	"github.com/chartwell/andy/internal/domain/ports"
	"github.com/chartwell/andy/internal/domain/usecases"
	httpserver "github.com/chartwell/andy/internal/infrastructure/http"
	"github.com/chartwell/andy/internal/pkg/logger"
)

func main() {
	os.Exit(realMain())
}

// realMain carries the exit code back to main so every deferred cleanup
// runs before the process exits.
func realMain() int {
	log, err := logger.New(getEnv("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("server exited", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, log *logger.Logger) error {
	// Document store: in-memory by default, sqlite when a DSN is set.
	var store ports.DocumentStore
	if dsn := getEnv("DOCSTORE_DSN", ""); dsn != "" {
		sqliteStore, err := docstore.NewSQLite(dsn)
		if err != nil {
			return err
		}
		defer sqliteStore.Close()
		store = sqliteStore
		log.Info("using sqlite document store", "dsn", dsn)
	} else {
		store = docstore.NewMemory()
	}

	if err := knowledge.SeedStore(ctx, store); err != nil {
		return err
	}
	if dir := getEnv("KNOWLEDGE_DOCS_DIR", ""); dir != "" {
		docs, err := knowledge.LoadDocumentsDir(dir)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := store.Append(ctx, doc); err != nil {
				log.Warn("skipping knowledge file", "id", doc.ID, "error", err)
			}
		}
		log.Info("loaded knowledge files", "dir", dir, "count", len(docs))
	}

	// Knowledge tables: built-in defaults, optionally overridden from a
	// YAML file that hot-reloads on change.
	var cfg *knowledge.Config
	configPath := getEnv("KNOWLEDGE_CONFIG", "")
	if configPath != "" {
		loaded, err := knowledge.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info("loaded knowledge config", "path", configPath)
	}

	retriever := usecases.NewRetriever(store, cfg.SynonymTable())
	composer := usecases.NewComposer(cfg.IntentRules())

	if configPath != "" {
		watcher, err := knowledge.NewWatcher(configPath, log)
		if err != nil {
			return err
		}
		defer watcher.Stop()
		err = watcher.Watch(ctx, func(cfg *knowledge.Config) {
			retriever.ReplaceSynonyms(cfg.SynonymTable())
			composer.ReplaceRules(cfg.IntentRules())
		})
		if err != nil {
			return err
		}
	}

	server := httpserver.NewServer(httpserver.Config{
		Log:           log,
		Forecaster:    usecases.NewForecaster(),
		Reorder:       usecases.NewReorderEngine(getEnvAsFloat("SERVICE_LEVEL_Z", usecases.DefaultServiceLevelZ, log)),
		Retriever:     retriever,
		Composer:      composer,
		Store:         store,
		Solar:         pvservice.NewClient(getEnv("PV_SERVICE_URL", "http://localhost:8001"), 0),
		DemoInventory: demoInventoryEnabled(log),
		Addr:          ":" + getEnv("PORT", "4000"),
	})

	return server.Start(ctx)
}

// demoInventoryEnabled is off unless a deployment opts in; the demo set
// stays reachable per request via ?demo=1 either way.
func demoInventoryEnabled(log *logger.Logger) bool {
	return getEnvAsBool("DEMO_INVENTORY", false, log)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64, log *logger.Logger) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var f float64
	if _, err := fmt.Sscanf(v, "%g", &f); err != nil {
		log.Warn("invalid float env value, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvAsBool(key string, fallback bool, log *logger.Logger) bool {
	switch os.Getenv(key) {
	case "":
		return fallback
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		log.Warn("invalid bool env value, using fallback", "key", key)
		return fallback
	}
}
