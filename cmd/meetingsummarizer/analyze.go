package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/meetingsummarizer/client"
)

type AnalyzeCommand struct {
	ServerFlags `embed:""`
	OutputFlags `embed:""`
	ID          int64 `help:"The ID returned by upload." required:""`
}

func (c AnalyzeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	sc := client.New(c.ServerURL, c.APIKey)

	log.Info("analyzing", slog.Int64("id", c.ID))
	s, err := sc.Analyze(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to analyze file: %w", describe(err))
	}
	log.Info("analysis complete", slog.Int64("id", s.ID), slog.String("status", s.Status))
	return c.write(os.Stdout, s)
}

// describe replaces errors carrying a server detail message with the message,
// which is more useful than the raw response body.
func describe(err error) error {
	if detail, ok := client.Detail(err); ok {
		return errors.New(detail)
	}
	return err
}
