package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/streamix/streamix-cli/internal/catalog"
	"github.com/streamix/streamix-cli/internal/services"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/streamix/streamix-cli/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config       *shared.Config
	auth         services.Authenticator
	catalog      services.Catalog
	interactions services.Interactions
	sessions     *shared.SessionStore
	genres       *catalog.GenreCache
	engine       *tasks.BrowseEngine
	logger       *log.Logger
	output       io.Writer
	input        io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config       *shared.Config
	Auth         services.Authenticator
	Catalog      services.Catalog
	Interactions services.Interactions
	Sessions     *shared.SessionStore
	Genres       *catalog.GenreCache
	Logger       *log.Logger
	Output       io.Writer
	Input        io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Genres == nil && opts.Catalog != nil {
		opts.Genres = catalog.NewGenreCache(opts.Catalog)
	}

	engine := tasks.NewBrowseEngine(opts.Catalog, opts.Interactions, opts.Genres, opts.Logger)

	return &Runner{
		config:       opts.Config,
		auth:         opts.Auth,
		catalog:      opts.Catalog,
		interactions: opts.Interactions,
		sessions:     opts.Sessions,
		genres:       opts.Genres,
		engine:       engine,
		logger:       opts.Logger,
		output:       opts.Output,
		input:        opts.Input,
	}
}

// SetLogger replaces the runner's logger and propagates it to the engine.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.engine = tasks.NewBrowseEngine(r.catalog, r.interactions, r.genres, logger)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, dashboardCommand, searchCommand, detailsCommand,
		moviesCommand, tvCommand, watchlistCommand, historyCommand, watchCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// session returns the active session or an error when none exists.
func (r *Runner) session() (userID string, err error) {
	if r.sessions == nil {
		return "", fmt.Errorf("%w: session store not initialized", shared.ErrNotAuthenticated)
	}
	current, ok := r.sessions.Current()
	if !ok {
		return "", fmt.Errorf("%w: run 'streamix auth login' first", shared.ErrNotAuthenticated)
	}
	return current.UserID, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
