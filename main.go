package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github/itish2003/studynotes/config"
	"github/itish2003/studynotes/controller"
	"github/itish2003/studynotes/services"
	"github/itish2003/studynotes/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	root := &cobra.Command{
		Use:   "studynotes",
		Short: "Flashcard and note API with summarized notes",
	}
	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	v := config.New()
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, envFile)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a .env file")
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("route-prefix", "", "path prefix for the API routes, e.g. /api")
	cmd.Flags().Bool("debug-errors", false, "include error details and stack traces in 500 responses")
	bindFlag(v, cmd, "addr", "addr")
	bindFlag(v, cmd, "route_prefix", "route-prefix")
	bindFlag(v, cmd, "debug_errors", "debug-errors")
	return cmd
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		log.Fatalf("FATAL: Failed to bind flag %s: %v", flag, err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// One client for every outbound model call; the per-call bound comes
	// from the summarizer timeout.
	httpClient := &http.Client{}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Printf("Warning: Failed to close store: %v", err)
		}
	}()

	summarizer, err := services.NewSummarizer(ctx, cfg.Summarizer, httpClient)
	if err != nil {
		return err
	}
	log.Printf("Using summarizer %s", summarizer.Name())

	splitter, err := services.NewPunktSplitter()
	if err != nil {
		return err
	}

	enricher := services.NewEnricher(summarizer, splitter, cfg.Summarizer.Timeout)
	studyController := controller.NewStudyController(services.NewStudyService(st))
	notesController := controller.NewNotesController(services.NewNotesService(st, enricher), cfg.DebugErrors)

	router := controller.NewRouter(cfg.RoutePrefix, studyController, notesController, st)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Go Gin backend server starting on %s", cfg.Addr)
		log.Printf("API endpoints:")
		for _, route := range [][2]string{
			{"GET", "/exam/"},
			{"POST", "/exam/add/"},
			{"GET", "/test/{subject}/"},
			{"GET", "/note/{content}/"},
			{"GET", "/notes/{topicId}/"},
		} {
			log.Printf("  %s %s%s", route[0], cfg.RoutePrefix, route[1])
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (store.DocumentStore, error) {
	collections := services.KnownCollections()
	if cfg.StoreBackend == config.StoreBackendMemory {
		log.Println("STORE: Using in-memory store; data is lost on shutdown.")
		return store.NewMemoryStore(collections), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	st, err := store.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase, collections)
	if err != nil {
		return nil, err
	}
	return st, nil
}
