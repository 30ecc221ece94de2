package api

import (
	"dispatch-toolkit/internal/api/handlers"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/logger"
	"dispatch-toolkit/internal/ports"
	"dispatch-toolkit/internal/services"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Dependencies holds everything the handlers need. Catalog is read-only.
type Dependencies struct {
	Catalog  domain.Catalog
	Random   ports.RandomSource
	Location *time.Location
	Now      func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	docHandler := &handlers.DocumentHandler{
		Sample: deps.Catalog.SampleDocument(),
		Random: deps.Random,
		Logger: logger.Named(log, "documents"),
	}
	billingHandler := &handlers.BillingHandler{
		Location: deps.Location,
		Now:      deps.Now,
		Logger:   logger.Named(log, "billing"),
	}
	quizHandler := &handlers.QuizHandler{
		Quiz:   services.NewQuiz(deps.Catalog, deps.Random),
		Logger: logger.Named(log, "quiz"),
	}
	weightHandler := &handlers.WeightHandler{
		Limits: deps.Catalog.AxleLimits(),
		Logger: logger.Named(log, "weights"),
	}
	refHandler := &handlers.ReferenceHandler{Catalog: deps.Catalog}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/documents/compare", docHandler.Compare)
	mux.HandleFunc("/documents/sample", docHandler.SampleRecord)
	mux.HandleFunc("/documents/mistake", docHandler.Mistake)

	mux.HandleFunc("/billing/calculate", billingHandler.Calculate)
	mux.HandleFunc("/billing/defaults", billingHandler.Defaults)

	mux.HandleFunc("/quiz/round", quizHandler.Round)
	mux.HandleFunc("/quiz/answer", quizHandler.Answer)
	mux.HandleFunc("/quiz/states", refHandler.States)
	mux.HandleFunc("/quiz/states/{name}", quizHandler.State)

	mux.HandleFunc("/weights/check", weightHandler.Check)
	mux.HandleFunc("/states", refHandler.States)
	mux.HandleFunc("/limits", refHandler.Limits)
	mux.HandleFunc("/pages", refHandler.Pages)

	return withMiddleware(logger.Named(log, "http"), mux)
}
