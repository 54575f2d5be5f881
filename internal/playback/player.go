package playback

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/streamix/streamix-cli/internal/shared"
)

// ProcessPlayer launches an external player command with the embed URL as its
// final argument and decodes newline-delimited JSON player messages from its
// stdout. This is the postMessage bridge of the hosted web client translated
// to a process boundary.
type ProcessPlayer struct {
	command []string
	logger  *log.Logger
}

// NewProcessPlayer creates a player from a whitespace-separated command
// string (no shell quoting is interpreted).
func NewProcessPlayer(command string, logger *log.Logger) (*ProcessPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: player command not configured", shared.ErrPlayerUnavailable)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ProcessPlayer{command: fields, logger: logger}, nil
}

// Start launches the player for the given URL and returns the message stream.
// The channel closes when the player's stdout reaches EOF or the context is
// canceled (which also kills the process). Unrecognized payloads are dropped
// at the boundary.
func (p *ProcessPlayer) Start(ctx context.Context, embedURL string) (<-chan Message, error) {
	args := append(p.command[1:], embedURL)
	cmd := exec.CommandContext(ctx, p.command[0], args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open player stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlayerUnavailable, err)
	}

	events := make(chan Message, 16)
	go func() {
		defer close(events)
		defer cmd.Wait()

		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			msg, err := ParseMessage([]byte(line))
			if err != nil {
				p.logger.Debug("dropping player payload", "err", err)
				continue
			}
			select {
			case events <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// OpenInBrowser is the fallback when no player command is configured: the
// embed URL opens in the system browser. No player messages arrive in this
// mode, so only the session-start save is recorded.
func OpenInBrowser(embedURL string) error {
	return shared.OpenBrowser(embedURL)
}
