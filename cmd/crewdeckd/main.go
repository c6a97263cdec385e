// Command crewdeckd is the session daemon entrypoint. It validates the
// resolution tables, wires tracing and storage, loads or creates the active
// session, and then waits for the event-handling layer to drive the engine.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/voidwatch/crewdeck/internal/platform/config"
	"github.com/voidwatch/crewdeck/internal/platform/otel"
	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
	"github.com/voidwatch/crewdeck/internal/storage"
	"github.com/voidwatch/crewdeck/internal/storage/sqlite"
	"github.com/voidwatch/crewdeck/internal/tables"
)

// Config holds the daemon's environment configuration.
type Config struct {
	DatabasePath string `env:"CREWDECK_DB_PATH" envDefault:"crewdeck.db"`
	SessionID    string `env:"CREWDECK_SESSION_ID" envDefault:"default"`
	SessionName  string `env:"CREWDECK_SESSION_NAME" envDefault:"Crew Session"`
	ServiceName  string `env:"CREWDECK_SERVICE_NAME" envDefault:"crewdeckd"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	// Table invariants are the only fatal condition class in the engine: a
	// coverage gap or duplicate id is an authoring defect and the daemon
	// must not start with it.
	if err := tables.ValidateAll(); err != nil {
		config.Exitf("validate tables: %v", err)
	}

	shutdown, err := otel.Setup(ctx, cfg.ServiceName)
	if err != nil {
		config.Exitf("setup tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		config.Exitf("open storage: %v", err)
	}
	defer store.Close()

	session, err := store.GetSession(ctx, cfg.SessionID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		session, err = sessiondomain.NewSession(sessiondomain.CreateSessionInput{Name: cfg.SessionName}, nil, nil)
		if err != nil {
			config.Exitf("create session: %v", err)
		}
		session.ID = cfg.SessionID
		if err := store.PutSession(ctx, session); err != nil {
			config.Exitf("persist session: %v", err)
		}
		log.Printf("created session %s (%s)", session.ID, session.Name)
	case err != nil:
		config.Exitf("load session: %v", err)
	default:
		log.Printf("loaded session %s (%s), %d crew", session.ID, session.Name, len(session.Crew))
	}

	log.Printf("crewdeckd ready (db=%s)", cfg.DatabasePath)
	<-ctx.Done()
	log.Println("crewdeckd shutting down")
}
