package main

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
	"svw.info/sudoku-solver/web"
)

type serveOptions struct {
	Listen  string `json:"listen"`
	DataDir string `json:"data_dir"`
	Store   string `json:"store"`  // fs | bolt
	Solver  string `json:"solver"` // backtrack | dlx
}

var (
	serveConfigPath string
	serveOpts       = serveOptions{
		Listen:  ":8080",
		DataDir: "./data",
		Store:   "fs",
		Solver:  "backtrack",
	}
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI and JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	commandServe.Flags().StringVarP(&serveConfigPath, "config", "c", "", "JSON configuration file path")
	commandServe.Flags().StringVar(&serveOpts.Listen, "listen", serveOpts.Listen, "listen address")
	commandServe.Flags().StringVar(&serveOpts.DataDir, "data-dir", serveOpts.DataDir, "puzzle store directory")
	commandServe.Flags().StringVar(&serveOpts.Store, "store", serveOpts.Store, "puzzle store backend: fs|bolt")
	commandServe.Flags().StringVar(&serveOpts.Solver, "solver", serveOpts.Solver, "solver engine: backtrack|dlx")
	mainCommand.AddCommand(commandServe)
}

// loadServeOptions merges the optional config file under any flags set on
// the command line; explicit flags win.
func loadServeOptions(cmd *cobra.Command) error {
	if serveConfigPath == "" {
		return nil
	}
	content, err := os.ReadFile(serveConfigPath)
	if err != nil {
		return err
	}
	var fileOpts serveOptions
	if err := json.Unmarshal(content, &fileOpts); err != nil {
		return err
	}
	if fileOpts.Listen != "" && !cmd.Flags().Changed("listen") {
		serveOpts.Listen = fileOpts.Listen
	}
	if fileOpts.DataDir != "" && !cmd.Flags().Changed("data-dir") {
		serveOpts.DataDir = fileOpts.DataDir
	}
	if fileOpts.Store != "" && !cmd.Flags().Changed("store") {
		serveOpts.Store = fileOpts.Store
	}
	if fileOpts.Solver != "" && !cmd.Flags().Changed("solver") {
		serveOpts.Solver = fileOpts.Solver
	}
	return nil
}

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		return solver.NewDLX()
	default:
		return solver.NewBacktracking()
	}
}

func newStorage(opts serveOptions) (ports.Storage, error) {
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(opts.Store)) {
	case "bolt":
		return storage.NewBolt(filepath.Join(opts.DataDir, "puzzles.db"))
	default:
		return storage.NewFS(opts.DataDir), nil
	}
}

func serve(cmd *cobra.Command) error {
	if err := loadServeOptions(cmd); err != nil {
		return err
	}

	s := newSolver(serveOpts.Solver)
	st, err := newStorage(serveOpts)
	if err != nil {
		return err
	}
	defer st.Close()

	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), st)
	api := httpadapter.New(uc)

	tmpl := web.Templates()
	r := chi.NewRouter()
	r.Use(httpadapter.RequestLogger(log))
	r.Mount("/api", api.Routes())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", nil); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})

	srv := &http.Server{
		Addr:              serveOpts.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("listen", serveOpts.Listen).
			WithField("store", serveOpts.Store).
			WithField("solver", serveOpts.Solver).
			Info("serving")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		log.Info("received ", sig, ", shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
