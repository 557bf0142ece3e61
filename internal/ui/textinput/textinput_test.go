package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	require.Nil(t, res)
	return m
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()

	m, res, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, res)
	assert.Nil(t, cmd)
	assert.False(t, m.Active())
	assert.Empty(t, m.View())
}

func TestEnterReturnsTrimmedText(t *testing.T) {
	m := New()
	m.Start(40)
	require.True(t, m.Active())

	m = typeText(t, m, " ~/music/a.flac ")
	m, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, res)
	assert.Equal(t, Result{Text: "~/music/a.flac"}, *res)
	assert.False(t, m.Active())
}

func TestEnterOnEmptyCancels(t *testing.T) {
	m := New()
	m.Start(40)

	_, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, res)
	assert.True(t, res.Canceled)
}

func TestEscCancelsAndClears(t *testing.T) {
	m := New()
	m.Start(40)
	m = typeText(t, m, "abc")

	m, res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, res)
	assert.True(t, res.Canceled)

	m.Start(40)
	m, res, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, res)
	assert.Empty(t, res.Text, "previous text does not survive a cancel")
}

func TestViewShowsPrompt(t *testing.T) {
	m := New()
	m.Start(40)
	m = typeText(t, m, "x.mp3")

	assert.Contains(t, m.View(), "open: ")
	assert.Contains(t, m.View(), "x.mp3")
}
