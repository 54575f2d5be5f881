// submodule cmd contains command definitions
package main

import (
	"context"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/urfave/cli/v3"
)

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

// setupCommand handles configuration bootstrapping.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a config.toml from the bundled template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your Streamix account and session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and store the session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "Account password (prompted when omitted)",
					},
					&cli.BoolFlag{
						Name:  "remember",
						Usage: "Persist the session across restarts",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Display name",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "verify-email",
				Usage: "Confirm the verification code mailed after registration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
					&cli.StringFlag{
						Name:  "code",
						Usage: "6-digit verification code",
					},
				},
				Action: r.AuthVerifyEmail,
			},
			{
				Name:   "logout",
				Usage:  "Revoke the refresh token and clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:  "forgot-password",
				Usage: "Reset a forgotten password via a mailed code",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
				},
				Action: r.AuthForgotPassword,
			},
			{
				Name:   "whoami",
				Usage:  "Show the active session",
				Action: r.AuthWhoami,
			},
		},
	}
}

// dashboardCommand renders the merged dashboard rows.
func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "dashboard",
		Usage:  "Show the dashboard rows (trending, popular, top rated, categories)",
		Flags:  jsonFlags(),
		Action: r.Dashboard,
	}
}

// searchCommand queries movies and TV shows together.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search movies and TV shows by title",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags:  jsonFlags(),
		Action: r.Search,
	}
}

// detailsCommand shows one title with cast, similar titles, and seasons.
func detailsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "details",
		Usage: "Show details for one title",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: append(jsonFlags(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Content type (movie or tv)",
				Value:   models.TypeMovie,
			},
		),
		Action: r.Details,
	}
}

// moviesCommand handles movie catalog operations
func moviesCommand(r *Runner) *cli.Command {
	return catalogCommand(r, "movies", models.TypeMovie, "Movie catalog operations")
}

// tvCommand handles TV catalog operations
func tvCommand(r *Runner) *cli.Command {
	cmd := catalogCommand(r, "tv", models.TypeTV, "TV show catalog operations")
	cmd.Commands = append(cmd.Commands, &cli.Command{
		Name:  "season",
		Usage: "Show one season of a TV show",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "tmdb-id"},
			&cli.StringArg{Name: "number"},
		},
		Flags:  jsonFlags(),
		Action: r.TVSeason,
	})
	return cmd
}

// catalogCommand builds the shared movie/TV subcommand set for one kind.
func catalogCommand(r *Runner, name, kind, usage string) *cli.Command {
	listAction := func(list string) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			return r.CatalogList(ctx, cmd, kind, list)
		}
	}

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Commands: []*cli.Command{
			{
				Name:  "all",
				Usage: "List the full cached catalog",
				Flags: append(jsonFlags(),
					&cli.StringFlag{
						Name:  "category",
						Usage: "Filter by category slug (e.g. Action)",
					},
				),
				Action: listAction("all"),
			},
			{
				Name:   "popular",
				Usage:  "List popular titles",
				Flags:  jsonFlags(),
				Action: listAction("popular"),
			},
			{
				Name:   "top-rated",
				Usage:  "List top-rated titles",
				Flags:  jsonFlags(),
				Action: listAction("top-rated"),
			},
			{
				Name:   "trending",
				Usage:  "List trending titles",
				Flags:  jsonFlags(),
				Action: listAction("trending"),
			},
			{
				Name:  "genres",
				Usage: "List the genre mapping",
				Flags: jsonFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return r.CatalogGenres(ctx, cmd, kind)
				},
			},
		},
	}
}

// watchlistCommand handles watchlist operations
func watchlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "watchlist",
		Aliases: []string{"wl"},
		Usage:   "Manage your watchlist",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the watchlist",
				Flags:  jsonFlags(),
				Action: r.WatchlistShow,
			},
			{
				Name:  "add",
				Usage: "Add a title to the watchlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Content type (movie or tv)",
						Value:   models.TypeMovie,
					},
				},
				Action: r.WatchlistAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a title from the watchlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.WatchlistRemove,
			},
			{
				Name:  "export",
				Usage: "Export the watchlist to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "watchlist.json",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (json or csv)",
						Value: "json",
					},
				},
				Action: r.WatchlistExport,
			},
		},
	}
}

// historyCommand handles watch-history operations
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect your watch history",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the full watch history",
				Flags:  jsonFlags(),
				Action: r.HistoryShow,
			},
			{
				Name:   "continue",
				Usage:  "Show unfinished titles (continue watching)",
				Flags:  jsonFlags(),
				Action: r.HistoryContinue,
			},
			{
				Name:  "export",
				Usage: "Export the watch history to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "history.json",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (json or csv)",
						Value: "json",
					},
				},
				Action: r.HistoryExport,
			},
		},
	}
}

// watchCommand starts playback of one title.
func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Play a title and sync watch progress",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Content type (movie or tv)",
				Value:   models.TypeMovie,
			},
			&cli.IntFlag{
				Name:    "season",
				Aliases: []string{"s"},
				Usage:   "Season number (tv only)",
			},
			&cli.IntFlag{
				Name:    "episode",
				Aliases: []string{"e"},
				Usage:   "Episode number (tv only)",
			},
			&cli.BoolFlag{
				Name:  "browser",
				Usage: "Open the embed URL in the browser instead of the player",
			},
			&cli.BoolFlag{
				Name:  "no-resume",
				Usage: "Start from the beginning even when saved progress exists",
			},
		},
		Action: r.Watch,
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive browser",
		Action:  r.TUI,
	}
}
