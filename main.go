package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/sidereusnuntius/flock/internal/config"
	"github.com/sidereusnuntius/flock/internal/initialization"
	core "github.com/sidereusnuntius/flock/internal/service/impl"
	"github.com/sidereusnuntius/flock/internal/session"
	"github.com/sidereusnuntius/flock/internal/snapshot"
	"github.com/sidereusnuntius/flock/internal/state"
	"github.com/sidereusnuntius/flock/internal/web"
)

func main() {
	configPath := pflag.String("config", "", "path to the configuration file")
	setup := pflag.Bool("setup", false, "run database migrations before starting")
	addr := pflag.String("addr", "", "listen address, overrides the configuration")
	pflag.Parse()

	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ReadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	if *setup {
		if err := initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			log.Fatal(err)
		}
	}

	st := state.State{
		DB:     d,
		Config: cfg,
	}

	store := snapshot.New(st.DB)
	dir, communities, err := store.LoadAll(context.Background())
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to load the saved snapshot")
	}
	zero.Info().Int("users", dir.Len()).Msg("snapshot loaded")

	service := core.New(dir, communities, session.NewTable(), store)

	manager := scs.NewCookieManager(cfg.SessionCookieKey)

	handler := web.New(&cfg, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	s := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// Persist the snapshot before going down.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		zero.Info().Msg("shutting down")
		if err := service.SaveAll(context.Background()); err != nil {
			zero.Error().Err(err).Msg("failed to save snapshot on shutdown")
		}
		s.Shutdown(context.Background())
	}()

	zero.Info().Str("addr", cfg.Addr).Msg("started server")
	err = s.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
