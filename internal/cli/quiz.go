package cli

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "State abbreviation quiz",
		Long: `Interactive quiz: type the two-letter postal abbreviation for the state
shown and press enter. Esc or ctrl+c ends the quiz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 0 {
				return errors.New("quiz: --rounds must not be negative")
			}

			m := newQuizModel(services.NewQuiz(app.Catalog, app.Random), rounds)
			p := tea.NewProgram(m,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("quiz: %w", err)
			}

			if qm, ok := final.(quizModel); ok {
				fmt.Fprintln(cmd.OutOrStdout(), qm.summary())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 0, "stop after this many answers (0 = until esc)")
	return cmd
}

// quizModel is the bubbletea model behind "dispatch quiz". Scoring lives in
// services.Quiz; the model only tracks input and the last toast.
type quizModel struct {
	quiz      *services.Quiz
	round     domain.QuizRound
	answered  int
	maxRounds int
	input     textinput.Model
	toast     *domain.Notification
	done      bool
}

func newQuizModel(q *services.Quiz, maxRounds int) quizModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. CA"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = "> "
	ti.Focus()

	return quizModel{
		quiz:      q,
		round:     q.Start(),
		maxRounds: maxRounds,
		input:     ti,
	}
}

func (m quizModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m quizModel) submit() (tea.Model, tea.Cmd) {
	res := m.quiz.SubmitAnswer(m.round, m.input.Value())

	n := res.Notification
	m.toast = &n
	m.round = res.Next
	m.answered++
	m.input.Reset()

	if m.maxRounds > 0 && m.answered >= m.maxRounds {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m quizModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Round %d • Score %d", m.round.Round, m.round.Score)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "What is the abbreviation for %s?\n", toastTitleStyle.Render(m.round.State.Name))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.toast != nil {
		b.WriteString(renderToast(*m.toast))
		b.WriteString("\n\n")
	}
	b.WriteString(mutedStyle.Render("enter submit • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m quizModel) summary() string {
	return fmt.Sprintf("Final score: %d of %d", m.round.Score, m.answered)
}
