package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/a-h/meetingsummarizer/client"
	"github.com/a-h/meetingsummarizer/models"
)

type ResultsCommand struct {
	ServerFlags `embed:""`
	OutputFlags `embed:""`
	ID          int64         `help:"The ID returned by upload." required:""`
	Wait        bool          `help:"Poll until the summary is available." default:"false"`
	Interval    time.Duration `help:"How often to poll when waiting." default:"2s"`
	Timeout     time.Duration `help:"How long to wait for the summary, zero waits until interrupted." default:"5m"`
}

func (c ResultsCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	sc := client.New(c.ServerURL, c.APIKey)

	p := poller{log: log, api: sc, interval: c.Interval, timeout: c.Timeout}
	var s models.Summary
	if c.Wait {
		s, err = p.WaitForSummary(ctx, c.ID)
	} else {
		s, err = sc.Results(ctx, c.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get results: %w", describe(err))
	}
	return c.write(os.Stdout, s)
}

type resultsGetter interface {
	Results(ctx context.Context, id int64) (models.Summary, error)
}

type poller struct {
	log      *slog.Logger
	api      resultsGetter
	interval time.Duration
	timeout  time.Duration
}

// WaitForSummary gets the results for id until the server has produced a
// summary. Errors from the server stop polling.
func (p poller) WaitForSummary(ctx context.Context, id int64) (s models.Summary, err error) {
	if p.interval <= 0 {
		return s, fmt.Errorf("invalid poll interval %v", p.interval)
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		s, err = p.api.Results(ctx, id)
		if err != nil {
			return s, err
		}
		if s.HasSummary() {
			return s, nil
		}
		p.log.Info("waiting for summary", slog.Int64("id", id), slog.String("status", s.Status))
		select {
		case <-ctx.Done():
			return s, fmt.Errorf("summary for %d not available: %w", id, ctx.Err())
		case <-ticker.C:
		}
	}
}
