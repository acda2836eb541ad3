package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/a-h/meetingsummarizer/client"
	"github.com/a-h/meetingsummarizer/models"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// API is the subset of the summarizer client used by the UI.
type API interface {
	UploadFile(ctx context.Context, path string) (models.Summary, error)
	Analyze(ctx context.Context, id int64) (models.Summary, error)
	Results(ctx context.Context, id int64) (models.Summary, error)
}

// AllowedTypes are the extensions highlighted by the file picker. Other
// files can still be selected.
var AllowedTypes = []string{".txt", ".mp3", ".wav"}

// Action identifies one of the user triggered requests.
type Action int

const (
	ActionNone Action = iota
	ActionUpload
	ActionAnalyze
	ActionResults
)

func (a Action) String() string {
	switch a {
	case ActionUpload:
		return "upload"
	case ActionAnalyze:
		return "analyze"
	case ActionResults:
		return "results"
	}
	return "none"
}

// fallbackError is displayed when a failed request carries no detail from the server.
func (a Action) fallbackError() string {
	switch a {
	case ActionUpload:
		return "Error uploading file"
	case ActionAnalyze:
		return "Error analyzing file"
	case ActionResults:
		return "Error retrieving results"
	}
	return "Error"
}

const (
	errNoFile = "Please select a file"
	errNoID   = "No file uploaded yet"
	errBadID  = "Please enter a valid ID or upload a file"
)

type focus int

const (
	focusPicker focus = iota
	focusID
)

// summaryMsg carries the record returned by a successful request.
type summaryMsg struct {
	action  Action
	summary models.Summary
}

// actionErrorMsg carries the error returned by a failed request.
type actionErrorMsg struct {
	action Action
	err    error
}

type Options struct {
	// Dir is the directory the file picker starts in.
	Dir string
	// AutoAnalyze starts analysis as soon as an upload succeeds.
	AutoAnalyze bool
}

// Model holds all of the view state.
type Model struct {
	ctx         context.Context
	log         *slog.Logger
	api         API
	autoAnalyze bool

	picker  filepicker.Model
	idInput textinput.Model
	spinner spinner.Model
	focus   focus
	width   int

	file       string
	summary    *models.Summary
	loading    bool
	action     Action
	err        string
	analysisID int64
}

func New(ctx context.Context, log *slog.Logger, api API, opts Options) Model {
	fp := filepicker.New()
	fp.AllowedTypes = AllowedTypes
	if opts.Dir != "" {
		fp.CurrentDirectory = opts.Dir
	}
	fp.AutoHeight = false
	fp.Height = 8

	ti := textinput.New()
	ti.Placeholder = "Enter ID"
	ti.Prompt = "┃ "
	ti.CharLimit = 19
	ti.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		ctx:         ctx,
		log:         log,
		api:         api,
		autoAnalyze: opts.AutoAnalyze,
		picker:      fp,
		idInput:     ti,
		spinner:     sp,
		focus:       focusPicker,
		width:       80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case summaryMsg:
		return m.handleSummary(msg)
	case actionErrorMsg:
		m.loading = false
		m.err = msg.action.fallbackError()
		if detail, ok := client.Detail(msg.err); ok {
			m.err = detail
		}
		m.log.Error("request failed", slog.String("action", msg.action.String()), slog.Any("error", msg.err))
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	// Directory listings and other picker internals.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "ctrl+u":
		return m.upload()
	case "ctrl+n":
		return m.analyze()
	case "ctrl+r":
		return m.getResults()
	case "tab", "shift+tab":
		return m.toggleFocus()
	}
	if m.focus == focusID {
		if msg.String() == "enter" {
			return m.getResults()
		}
		var cmd tea.Cmd
		m.idInput, cmd = m.idInput.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selectFile(path)
	} else if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.selectFile(path)
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusID {
		m.focus = focusPicker
		m.idInput.Blur()
		return m, nil
	}
	m.focus = focusID
	return m, m.idInput.Focus()
}

func (m *Model) selectFile(path string) {
	m.file = path
	m.err = ""
	m.log.Debug("file selected", slog.String("path", path))
}

func (m Model) handleSummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.err = ""
	s := msg.summary
	m.summary = &s
	m.log.Info("request complete", slog.String("action", msg.action.String()), slog.Int64("id", s.ID), slog.String("status", s.Status))
	if msg.action != ActionUpload {
		return m, nil
	}
	m.analysisID = s.ID
	m.idInput.Placeholder = fmt.Sprintf("Using ID: %d", s.ID)
	if m.autoAnalyze {
		return m.analyze()
	}
	return m, nil
}

// UploadEnabled reports whether the Upload control can be used.
func (m Model) UploadEnabled() bool {
	return m.file != "" && !m.loading
}

// AnalyzeEnabled reports whether the Analyze control can be used.
func (m Model) AnalyzeEnabled() bool {
	return m.analysisID != 0 && !m.loading
}

// ResultsEnabled reports whether the Get Results control can be used.
func (m Model) ResultsEnabled() bool {
	return !m.loading
}

func (m Model) upload() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if m.file == "" {
		m.err = errNoFile
		return m, nil
	}
	path := m.file
	m.log.Info("uploading file", slog.String("path", path))
	return m.start(ActionUpload, func(ctx context.Context) (models.Summary, error) {
		return m.api.UploadFile(ctx, path)
	})
}

func (m Model) analyze() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if m.analysisID == 0 {
		m.err = errNoID
		return m, nil
	}
	id := m.analysisID
	m.log.Info("analyzing", slog.Int64("id", id))
	return m.start(ActionAnalyze, func(ctx context.Context) (models.Summary, error) {
		return m.api.Analyze(ctx, id)
	})
}

func (m Model) getResults() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	id, ok := resolveID(m.idInput.Value(), m.analysisID)
	if !ok {
		m.err = errBadID
		return m, nil
	}
	m.log.Info("getting results", slog.Int64("id", id))
	return m.start(ActionResults, func(ctx context.Context) (models.Summary, error) {
		return m.api.Results(ctx, id)
	})
}

func (m Model) start(a Action, f func(ctx context.Context) (models.Summary, error)) (tea.Model, tea.Cmd) {
	m.loading = true
	m.action = a
	m.err = ""
	ctx := m.ctx
	request := func() tea.Msg {
		s, err := f(ctx)
		if err != nil {
			return actionErrorMsg{action: a, err: err}
		}
		return summaryMsg{action: a, summary: s}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

// resolveID picks the id typed by the user, falling back to the id of the
// last upload when the input is empty, not a number, or zero.
func resolveID(input string, analysisID int64) (id int64, ok bool) {
	if id, ok = leadingInt(input); ok && id != 0 {
		return id, true
	}
	if analysisID != 0 {
		return analysisID, true
	}
	return 0, false
}

// leadingInt parses the integer at the start of s, ignoring anything after
// it, so "3.7" is 3 and "12abc" is 12.
func leadingInt(s string) (n int64, ok bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	return n, err == nil
}
