package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	UI        UICommand        `cmd:"ui" default:"1" help:"Run the interactive meeting summarizer."`
	Upload    UploadCommand    `cmd:"upload" help:"Upload a meeting transcript or recording."`
	Analyze   AnalyzeCommand   `cmd:"analyze" help:"Start analysis of an uploaded file."`
	Results   ResultsCommand   `cmd:"results" help:"Get the summary of an uploaded file."`
	Summarize SummarizeCommand `cmd:"summarize" help:"Upload and analyze a file in one step."`
	Version   VersionCommand   `cmd:"version" help:"Print the version of the meeting summarizer."`
}

// ServerFlags are shared by all commands that talk to the summarizer server.
type ServerFlags struct {
	ServerURL string `help:"The URL of the summarizer server." env:"MEETING_SUMMARIZER_URL" default:"http://localhost:8000"`
	APIKey    string `help:"The API key for the summarizer server." env:"MEETING_SUMMARIZER_API_KEY" default:""`
	LogLevel  string `help:"The log level to use." env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
}

func main() {
	// Settings can be provided in a .env file, it's fine for it not to exist.
	_ = godotenv.Load(".env")

	var cli CLI
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx := kong.Parse(&cli,
		kong.Name("meetingsummarizer"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ll,
	}))
}
