package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/pipeline"
)

func TestStageStartedResetsProgress(t *testing.T) {
	m := initialModel(&config.Config{})
	m.ev = pipeline.ProgressEvent{Stage: pipeline.StageDiscovery, Done: 3, Total: 10}

	updated, _ := m.Update(stageStartedMsg(pipeline.StageDedup))
	mm := updated.(model)

	assert.Equal(t, pipeline.StageDedup, mm.currentStage)
	assert.Equal(t, 0, mm.ev.Total)
}

func TestStageFinishedMarksDone(t *testing.T) {
	m := initialModel(&config.Config{})

	updated, _ := m.Update(stageFinishedMsg(pipeline.StageExtensionFix))
	mm := updated.(model)

	assert.True(t, mm.doneStages[pipeline.StageExtensionFix])
}

func TestWarnMsgAccumulates(t *testing.T) {
	m := initialModel(&config.Config{})

	updated, _ := m.Update(warnMsg("careful"))
	updated, _ = updated.(model).Update(warnMsg("again"))
	mm := updated.(model)

	require.Len(t, mm.warnings, 2)
	assert.Equal(t, "careful", mm.warnings[0])
	assert.Equal(t, "again", mm.warnings[1])
}

func TestDoneMsgMarksFinished(t *testing.T) {
	m := initialModel(&config.Config{})
	result := &pipeline.Result{Success: true, TotalMediaFound: 5}

	updated, _ := m.Update(doneMsg{result: result})
	mm := updated.(model)

	assert.True(t, mm.finished)
	assert.Same(t, result, mm.result)
}

func TestQuitKeyRequestsQuit(t *testing.T) {
	m := initialModel(&config.Config{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestEnterDoesNotQuitBeforeFinished(t *testing.T) {
	m := initialModel(&config.Config{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestViewRendersWithoutPanicBeforeAndAfterDone(t *testing.T) {
	m := initialModel(&config.Config{})
	assert.NotPanics(t, func() { m.View() })

	updated, _ := m.Update(doneMsg{result: &pipeline.Result{Success: true}})
	mm := updated.(model)
	assert.NotPanics(t, func() { mm.View() })
}
