package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/meetingsummarizer/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Green       = lipgloss.Color("#50fa7b")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(Purple).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(Comment)
	focusedStyle  = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(Red).MarginTop(1)
	spinnerStyle  = lipgloss.NewStyle().Foreground(Pink)
	disabledStyle = lipgloss.NewStyle().Padding(0, 1).Background(CurrentLine).Foreground(Comment)
	panelStyle    = lipgloss.NewStyle().Padding(1).MarginTop(1).Background(Background).Foreground(Foreground)
	headingStyle  = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	fieldStyle    = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
)

var actionToButtonStyle = map[Action]lipgloss.Style{
	ActionUpload:  lipgloss.NewStyle().Padding(0, 1).Background(Cyan).Foreground(Background),
	ActionAnalyze: lipgloss.NewStyle().Padding(0, 1).Background(Green).Foreground(Background),
	ActionResults: lipgloss.NewStyle().Padding(0, 1).Background(Purple).Foreground(Background),
}

type button struct {
	action  Action
	key     string
	label   string
	busy    string
	enabled bool
}

func (m Model) buttons() []button {
	return []button{
		{action: ActionUpload, key: "ctrl+u", label: "Upload File", busy: "Uploading...", enabled: m.UploadEnabled()},
		{action: ActionAnalyze, key: "ctrl+n", label: "Analyze", busy: "Analyzing...", enabled: m.AnalyzeEnabled()},
		{action: ActionResults, key: "ctrl+r", label: "Get Results", busy: "Fetching...", enabled: m.ResultsEnabled()},
	}
}

func (m Model) renderButton(b button) string {
	label := b.label
	if m.loading {
		label = b.busy
	}
	style := disabledStyle
	if b.enabled {
		style = actionToButtonStyle[b.action]
	}
	return style.Render(label) + " " + labelStyle.Render(b.key)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Meeting Summarizer"))
	sb.WriteString("\n")

	sb.WriteString(m.sectionLabel(focusPicker, "Select a file ("+strings.Join(AllowedTypes, ", ")+")"))
	sb.WriteString("\n")
	sb.WriteString(m.picker.View())
	sb.WriteString("\n")
	selected := "none"
	if m.file != "" {
		selected = m.file
	}
	sb.WriteString(labelStyle.Render("Selected: ") + selected)
	sb.WriteString("\n\n")

	sb.WriteString(m.sectionLabel(focusID, "Enter ID to Get Results (optional)"))
	sb.WriteString("\n")
	sb.WriteString(m.idInput.View())
	sb.WriteString("\n\n")

	buttons := m.buttons()
	rendered := make([]string, len(buttons))
	for i, b := range buttons {
		rendered[i] = m.renderButton(b)
	}
	sb.WriteString(strings.Join(rendered, "  "))
	if m.loading {
		sb.WriteString("  " + m.spinner.View())
	}
	sb.WriteString("\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n")
	}

	if m.summary != nil {
		sb.WriteString(panelStyle.Render(formatSummary(*m.summary, m.wrapWidth())))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("tab: switch field • enter: open/select • esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) sectionLabel(f focus, text string) string {
	if m.focus == f {
		return focusedStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func (m Model) wrapWidth() int {
	// Allow for the panel padding.
	if w := m.width - 4; w > 20 {
		return w
	}
	return 20
}

func formatSummary(s models.Summary, width int) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Summary"))
	sb.WriteString("\n")
	writeField(&sb, "ID", fmt.Sprintf("%d", s.ID))
	writeField(&sb, "Filename", s.Filename)
	writeField(&sb, "Status", s.Status)
	if s.HasSummary() {
		sb.WriteString("\n")
		sb.WriteString(headingStyle.Render("Summary Content:"))
		sb.WriteString("\n")
		sb.WriteString(wordwrap.String(strings.TrimSpace(*s.Summary), width))
		sb.WriteString("\n\n")
	}
	writeField(&sb, "Created At", formatCreatedAt(s.CreatedAt))
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeField(sb *strings.Builder, name, value string) {
	sb.WriteString(fieldStyle.Render(name + ":"))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// formatCreatedAt renders the server timestamp in local time. Timestamps
// without a zone are taken to be local. Unparseable values are returned as is.
func formatCreatedAt(v string) string {
	for _, layout := range createdAtLayouts {
		t, err := time.ParseInLocation(layout, v, time.Local)
		if err == nil {
			return t.Local().Format("1/2/2006, 3:04:05 PM")
		}
	}
	return v
}
