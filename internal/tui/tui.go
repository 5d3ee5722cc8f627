// Package tui implements the full-screen Bubble Tea progress view,
// a direct generalization of the teacher's ui_tui.go phase-indicator /
// spinner / progress-bar screen from its six organizer phases to the
// real eight pipeline stages. Unlike the teacher's TUI there is no
// interactive review-and-accept gate: spec.md's pipeline has no human
// approval step between planning and moving, so the model is a pure
// progress display that quits on completion or on q/ctrl+c.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/pipeline"
)

var stageOrder = []pipeline.StageName{
	pipeline.StageExtensionFix,
	pipeline.StageDiscovery,
	pipeline.StageDedup,
	pipeline.StageDateExtract,
	pipeline.StageMetadataWrite,
	pipeline.StageAlbumResolve,
	pipeline.StageMove,
	pipeline.StageCreationTime,
}

var stageLabels = map[pipeline.StageName]string{
	pipeline.StageExtensionFix:  "Extensions",
	pipeline.StageDiscovery:     "Discovery",
	pipeline.StageDedup:         "Dedup",
	pipeline.StageDateExtract:   "Dates",
	pipeline.StageMetadataWrite: "Metadata",
	pipeline.StageAlbumResolve:  "Albums",
	pipeline.StageMove:          "Moving",
	pipeline.StageCreationTime:  "Creation Time",
}

type stageStartedMsg pipeline.StageName
type stageProgressMsg pipeline.ProgressEvent
type stageFinishedMsg pipeline.StageName
type warnMsg string
type doneMsg struct {
	result *pipeline.Result
	err    error
}

// bridgeReporter adapts pipeline.ProgressReporter onto a running
// tea.Program's Send, the same role the teacher's progress channels plus
// waitForProgress command play, just pushed rather than polled.
type bridgeReporter struct {
	program *tea.Program
}

func (b *bridgeReporter) StageStarted(stage pipeline.StageName)  { b.program.Send(stageStartedMsg(stage)) }
func (b *bridgeReporter) Progress(ev pipeline.ProgressEvent)     { b.program.Send(stageProgressMsg(ev)) }
func (b *bridgeReporter) StageFinished(stage pipeline.StageName) { b.program.Send(stageFinishedMsg(stage)) }
func (b *bridgeReporter) Warn(msg string)                        { b.program.Send(warnMsg(msg)) }

type model struct {
	cfg *config.Config

	spinner  spinner.Model
	progress progress.Model

	currentStage pipeline.StageName
	doneStages   map[pipeline.StageName]bool
	ev           pipeline.ProgressEvent
	warnings     []string

	result *pipeline.Result
	err    error

	width, height int
	finished      bool
}

func initialModel(cfg *config.Config) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)
	p.Width = 60

	return model{
		cfg:        cfg,
		spinner:    s,
		progress:   p,
		doneStages: make(map[pipeline.StageName]bool),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		width := msg.Width - 35
		if width < 20 {
			width = 20
		}
		m.progress.Width = width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.finished {
				return m, tea.Quit
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stageStartedMsg:
		m.currentStage = pipeline.StageName(msg)
		m.ev = pipeline.ProgressEvent{}
		return m, nil

	case stageProgressMsg:
		m.ev = pipeline.ProgressEvent(msg)
		return m, nil

	case stageFinishedMsg:
		m.doneStages[pipeline.StageName(msg)] = true
		return m, nil

	case warnMsg:
		m.warnings = append(m.warnings, string(msg))
		return m, nil

	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		m.finished = true
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		MarginLeft(2)
	b.WriteString(titleStyle.Render("Takeout Reorganizer"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	for i, stage := range stageOrder {
		if i > 0 {
			b.WriteString(" → ")
		}
		switch {
		case stage == m.currentStage && !m.finished:
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(stageLabels[stage]))
		case m.doneStages[stage]:
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("✓"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(stageLabels[stage]))
		}
	}
	b.WriteString("\n\n")

	if m.finished {
		b.WriteString(m.renderDone())
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n\n", m.spinner.View(), stageLabels[m.currentStage]))
		if m.ev.Total > 0 {
			percent := float64(m.ev.Done) / float64(m.ev.Total)
			b.WriteString("  ")
			b.WriteString(m.progress.ViewAs(percent))
			b.WriteString(fmt.Sprintf(" %d%% (%d/%d)\n", int(percent*100), m.ev.Done, m.ev.Total))
		}
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(2)
	if m.finished {
		b.WriteString(helpStyle.Render("enter: quit • q: quit"))
	} else {
		b.WriteString(helpStyle.Render("q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m model) renderDone() string {
	var b strings.Builder
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		MarginLeft(2)

	if m.err != nil {
		b.WriteString(boxStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil {
		return boxStyle.Render("no result")
	}

	status := "DONE!"
	if !m.result.Success {
		status = "Processing failed: " + m.result.FailureReason
	}

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\nMedia found: %d\nDuplicates removed: %d\nExtensions fixed: %d\nDatetimes written: %d\nCoordinates written: %d\nPlaced/Dropped/Failed: %d/%d/%d",
		status,
		m.result.TotalMediaFound,
		m.result.DuplicatesRemoved,
		m.result.ExtensionsFixed,
		m.result.DateTimesWritten,
		m.result.CoordinatesWritten,
		m.result.MoveStats.Placed, m.result.MoveStats.Dropped, m.result.MoveStats.Failed,
	)))
	for _, w := range m.warnings {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).MarginLeft(2).Render("warning: " + w))
	}
	return b.String()
}

// Run starts the TUI and drives the pipeline in a background goroutine,
// the same split as the teacher's scanFiles/processMetadata tea.Cmd
// functions, just collapsed into one driver call since the full pipeline
// (unlike the teacher's phase-by-phase commands) already reports its own
// progress through the ProgressReporter interface.
func Run(cfg *config.Config) (*pipeline.Result, error) {
	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	reporter := &bridgeReporter{program: p}

	go func() {
		result, err := pipeline.Run(cfg, reporter)
		p.Send(doneMsg{result: result, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := finalModel.(model)
	return m.result, m.err
}
