package dto

type StateResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// QuizRound deliberately omits the abbreviation so the answer is not leaked.
type QuizRound struct {
	State string `json:"state"`
	Score int    `json:"score"`
	Round int    `json:"round"`
}

type AnswerRequest struct {
	Round  QuizRound `json:"round"`
	Answer string    `json:"answer"`
}

type AnswerResponse struct {
	Correct      bool                 `json:"correct"`
	Expected     StateResponse        `json:"expected"`
	Score        int                  `json:"score"`
	NextRound    QuizRound            `json:"next_round"`
	Notification NotificationResponse `json:"notification"`
}
