package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// QuizHandler serves the state abbreviation quiz. Round state travels with
// the client; the server keeps none.
type QuizHandler struct {
	Quiz   *services.Quiz
	Logger *zap.Logger
}

// Round draws a new prompt. Optional score and round query parameters carry
// the running tallies (defaults 0 and 1).
func (h *QuizHandler) Round(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	score, ok := queryInt(w, r, "score", 0, 0)
	if !ok {
		return
	}
	round, ok := queryInt(w, r, "round", 1, 1)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, toQuizRound(h.Quiz.NextRound(score, round)))
}

// Answer judges one submission and returns the next round.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, ok := h.Quiz.Lookup(req.Round.State)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "round.state is not a known state")
		return
	}
	if req.Round.Score < 0 {
		writeError(w, r, http.StatusBadRequest, "round.score must not be negative")
		return
	}

	round := domain.QuizRound{State: state, Score: req.Round.Score, Round: req.Round.Round}
	if round.Round < 1 {
		round.Round = 1
	}

	res := h.Quiz.SubmitAnswer(round, req.Answer)
	h.Logger.Debug("quiz answer judged",
		zap.String("state", state.Name),
		zap.Bool("correct", res.Correct),
		zap.Int("round", round.Round))

	writeJSON(w, r, http.StatusOK, dto.AnswerResponse{
		Correct:      res.Correct,
		Expected:     toStateResponse(res.Expected),
		Score:        res.Score,
		NextRound:    toQuizRound(res.Next),
		Notification: toNotification(res.Notification),
	})
}

// State looks up one state by full name.
func (h *QuizHandler) State(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	name := strings.TrimSpace(r.PathValue("name"))
	state, ok := h.Quiz.Lookup(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "state not found")
		return
	}

	writeJSON(w, r, http.StatusOK, toStateResponse(state))
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, fallback, lowest int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < lowest {
		writeError(w, r, http.StatusBadRequest, key+" must be an integer >= "+strconv.Itoa(lowest))
		return 0, false
	}
	return v, true
}

func toQuizRound(r domain.QuizRound) dto.QuizRound {
	return dto.QuizRound{State: r.State.Name, Score: r.Score, Round: r.Round}
}

func toStateResponse(s domain.StateEntry) dto.StateResponse {
	return dto.StateResponse{Name: s.Name, Abbreviation: s.Abbreviation}
}
