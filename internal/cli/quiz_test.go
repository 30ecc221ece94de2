package cli

import (
	"dispatch-toolkit/internal/adapters/random"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Index 42 is Texas, 31 is New York.
func newTestQuizModel(maxRounds int, draws ...int) quizModel {
	q := services.NewQuiz(domain.DefaultCatalog(), random.NewSequenceSource(draws...))
	return newQuizModel(q, maxRounds)
}

func typeText(t *testing.T, m quizModel, s string) quizModel {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	qm, ok := next.(quizModel)
	require.True(t, ok)
	return qm
}

func press(t *testing.T, m quizModel, k tea.KeyType) (quizModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(tea.KeyMsg{Type: k})
	qm, ok := next.(quizModel)
	require.True(t, ok)
	return qm, cmd
}

func TestQuizModelCorrectAnswer(t *testing.T) {
	m := newTestQuizModel(0, 42, 31)
	require.Equal(t, "Texas", m.round.State.Name)
	assert.Contains(t, m.View(), "What is the abbreviation for")

	m = typeText(t, m, "tx")
	assert.Equal(t, "tx", m.input.Value())

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 1, m.answered)
	assert.Equal(t, domain.QuizRound{State: domain.StateEntry{Name: "New York", Abbreviation: "NY"}, Score: 1, Round: 2}, m.round)
	require.NotNil(t, m.toast)
	assert.Equal(t, "Correct!", m.toast.Title)
	assert.Contains(t, m.View(), "Texas → TX")
}

func TestQuizModelEmptyAnswerIsWrong(t *testing.T) {
	m := newTestQuizModel(0, 42)

	m, _ = press(t, m, tea.KeyEnter)
	require.NotNil(t, m.toast)
	assert.Equal(t, "Not quite", m.toast.Title)
	assert.True(t, m.toast.IsDestructive())
	assert.Equal(t, 0, m.round.Score)
	assert.Equal(t, 2, m.round.Round)
}

func TestQuizModelStopsAfterRounds(t *testing.T) {
	m := newTestQuizModel(1, 42)
	m = typeText(t, m, "TX")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.True(t, m.done)
	assert.Equal(t, "", m.View())
	assert.Equal(t, "Final score: 1 of 1", m.summary())
}

func TestQuizModelEscQuits(t *testing.T) {
	m := newTestQuizModel(0, 42)

	m, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Equal(t, "Final score: 0 of 0", m.summary())
}
