package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/a-h/meetingsummarizer/client"
	"github.com/a-h/meetingsummarizer/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type UICommand struct {
	ServerFlags `embed:""`
	Dir         string `help:"The directory to start the file picker in." env:"MEETING_SUMMARIZER_DIR" default:"." type:"existingdir"`
	AutoAnalyze bool   `help:"Start analysis as soon as an upload completes." env:"AUTO_ANALYZE" default:"false"`
	LogFile     string `help:"Write logs to this file, the terminal is used by the UI." env:"LOG_FILE" default:""`
}

func (c UICommand) Run(ctx context.Context) (err error) {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := newLogger(w, c.LogLevel)
	log.Info("starting UI", slog.String("url", c.ServerURL), slog.String("dir", c.Dir))

	sc := client.New(c.ServerURL, c.APIKey)
	m := ui.New(ctx, log, sc, ui.Options{
		Dir:         c.Dir,
		AutoAnalyze: c.AutoAnalyze,
	})
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}
