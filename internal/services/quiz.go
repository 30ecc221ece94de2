package services

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/ports"
	"fmt"
	"strings"
)

// Quiz draws state-abbreviation prompts and judges answers.
//
// Draws are independent and uniform over the catalog, so repeats are expected.
// A Quiz holds no per-player state; callers carry QuizRound values between
// calls. It is safe for concurrent use when its RandomSource is.
type Quiz struct {
	catalog domain.Catalog
	rng     ports.RandomSource
}

func NewQuiz(catalog domain.Catalog, rng ports.RandomSource) *Quiz {
	return &Quiz{catalog: catalog, rng: rng}
}

// Start returns the first round: score 0, round 1.
func (q *Quiz) Start() domain.QuizRound {
	return q.NextRound(0, 1)
}

// NextRound draws a new prompt carrying the given score and round number.
func (q *Quiz) NextRound(score, round int) domain.QuizRound {
	return domain.QuizRound{
		State: q.catalog.StateAt(q.rng.IntN(q.catalog.Len())),
		Score: score,
		Round: round,
	}
}

// SubmitAnswer judges answer against the current prompt.
//
// Whatever the outcome, the round counter advances by one and a new prompt is
// drawn. The score grows by one only on a correct answer.
func (q *Quiz) SubmitAnswer(round domain.QuizRound, answer string) domain.AnswerResult {
	correct := IsCorrectAbbreviation(round.State, answer)

	score := round.Score
	if correct {
		score++
	}

	return domain.AnswerResult{
		Correct:      correct,
		Expected:     round.State,
		Score:        score,
		Next:         q.NextRound(score, round.Round+1),
		Notification: QuizNotification(round.State, correct),
	}
}

// Lookup finds a state by full name, ignoring case and spacing.
func (q *Quiz) Lookup(name string) (domain.StateEntry, bool) {
	return q.catalog.StateByName(name)
}

// IsCorrectAbbreviation compares a trimmed, lowercased answer with the
// expected abbreviation. No fuzzy or legacy abbreviations are accepted.
func IsCorrectAbbreviation(state domain.StateEntry, answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(state.Abbreviation)
}

// QuizNotification builds the toast shown after a submission.
func QuizNotification(state domain.StateEntry, correct bool) domain.Notification {
	if correct {
		return domain.Notification{
			Title:       "Correct!",
			Description: fmt.Sprintf("%s → %s", state.Name, state.Abbreviation),
			Severity:    domain.SeverityDefault,
		}
	}

	return domain.Notification{
		Title:       "Not quite",
		Description: fmt.Sprintf("It's %s for %s", state.Abbreviation, state.Name),
		Severity:    domain.SeverityDestructive,
	}
}
