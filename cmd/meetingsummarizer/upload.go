package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/meetingsummarizer/client"
)

type UploadCommand struct {
	ServerFlags `embed:""`
	OutputFlags `embed:""`
	File        string `help:"The .txt, .mp3 or .wav file to upload." required:"" type:"existingfile"`
}

func (c UploadCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	sc := client.New(c.ServerURL, c.APIKey)

	log.Info("uploading file", slog.String("file", c.File))
	s, err := sc.UploadFile(ctx, c.File)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", describe(err))
	}
	log.Info("file uploaded", slog.Int64("id", s.ID), slog.String("status", s.Status))
	return c.write(os.Stdout, s)
}
