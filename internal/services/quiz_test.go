package services

import (
	"dispatch-toolkit/internal/adapters/random"
	"dispatch-toolkit/internal/domain"
	"testing"
)

func TestQuizStart(t *testing.T) {
	q := NewQuiz(domain.DefaultCatalog(), random.NewSequenceSource(42))

	r := q.Start()
	if r.Round != 1 || r.Score != 0 {
		t.Fatalf("round = %+v, want round 1 score 0", r)
	}
	if r.State != (domain.StateEntry{Name: "Texas", Abbreviation: "TX"}) {
		t.Fatalf("state = %+v, want Texas", r.State)
	}
}

func TestQuizLookupTexas(t *testing.T) {
	q := NewQuiz(domain.DefaultCatalog(), random.GlobalSource{})

	for _, name := range []string{"Texas", "texas", "  TEXAS "} {
		s, ok := q.Lookup(name)
		if !ok || s.Abbreviation != "TX" {
			t.Fatalf("Lookup(%q) = %+v, %v", name, s, ok)
		}
	}
	if _, ok := q.Lookup("Puerto Rico"); ok {
		t.Fatal("Lookup(Puerto Rico) found an entry")
	}
}

func TestQuizSubmitCorrectVariants(t *testing.T) {
	q := NewQuiz(domain.DefaultCatalog(), random.NewSequenceSource(42, 0))
	texas := domain.StateEntry{Name: "Texas", Abbreviation: "TX"}

	for _, answer := range []string{"TX", "tx", "Tx", "  tX\t", "\ntx "} {
		round := domain.QuizRound{State: texas, Score: 3, Round: 7}
		res := q.SubmitAnswer(round, answer)

		if !res.Correct {
			t.Fatalf("answer %q judged wrong", answer)
		}
		if res.Score != 4 || res.Next.Score != 4 {
			t.Fatalf("answer %q: score = %d next = %d, want 4", answer, res.Score, res.Next.Score)
		}
		if res.Next.Round != 8 {
			t.Fatalf("next round = %d, want 8", res.Next.Round)
		}
		if res.Notification.Title != "Correct!" || res.Notification.Description != "Texas → TX" {
			t.Fatalf("notification = %+v", res.Notification)
		}
	}
}

func TestQuizSubmitWrongAnswers(t *testing.T) {
	q := NewQuiz(domain.DefaultCatalog(), random.NewSequenceSource(0))
	texas := domain.StateEntry{Name: "Texas", Abbreviation: "TX"}

	for _, answer := range []string{"", "T", "TXX", "T X", "Texas", "TE"} {
		res := q.SubmitAnswer(domain.QuizRound{State: texas, Score: 2, Round: 5}, answer)

		if res.Correct {
			t.Fatalf("answer %q judged correct", answer)
		}
		if res.Score != 2 {
			t.Fatalf("answer %q: score = %d, want 2", answer, res.Score)
		}
		if res.Next.Round != 6 {
			t.Fatalf("next round = %d, want 6", res.Next.Round)
		}
		if !res.Notification.IsDestructive() || res.Notification.Description != "It's TX for Texas" {
			t.Fatalf("notification = %+v", res.Notification)
		}
	}
}

func TestQuizDrawsAreIndependent(t *testing.T) {
	rng := random.NewSequenceSource(4, 4, 4)
	q := NewQuiz(domain.DefaultCatalog(), rng)

	r := q.Start()
	for i := 0; i < 2; i++ {
		res := q.SubmitAnswer(r, "zz")
		if res.Next.State != r.State {
			t.Fatalf("draw %d = %+v, want repeat of %+v", i, res.Next.State, r.State)
		}
		r = res.Next
	}
	if rng.Calls() != 3 {
		t.Fatalf("draws = %d, want 3", rng.Calls())
	}
}

func TestQuizPaddedCatalogRowsStillMatch(t *testing.T) {
	states := domain.States()
	states[42] = domain.StateEntry{Name: " Texas ", Abbreviation: " TX "}

	catalog, err := domain.NewCatalog(states, domain.DefaultAxleLimits(), domain.DefaultSampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := NewQuiz(catalog, random.NewSequenceSource(42))
	res := q.SubmitAnswer(q.Start(), "tx")
	if !res.Correct || res.Score != 1 {
		t.Fatalf("result = %+v, want correct", res)
	}
}
