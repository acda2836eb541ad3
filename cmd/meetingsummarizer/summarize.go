package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/meetingsummarizer/client"
)

type SummarizeCommand struct {
	ServerFlags `embed:""`
	OutputFlags `embed:""`
	File        string `help:"The .txt, .mp3 or .wav file to summarize." required:"" type:"existingfile"`
}

func (c SummarizeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	sc := client.New(c.ServerURL, c.APIKey)

	log.Info("uploading file", slog.String("file", c.File))
	s, err := sc.UploadFile(ctx, c.File)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", describe(err))
	}
	id := s.ID
	log.Info("analyzing", slog.Int64("id", id))
	s, err = sc.Analyze(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to analyze file %d: %w", id, describe(err))
	}
	log.Info("analysis complete", slog.Int64("id", s.ID), slog.String("status", s.Status))
	return c.write(os.Stdout, s)
}
