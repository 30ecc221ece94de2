package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/obs"
	"dispatch-toolkit/internal/ports"
	"dispatch-toolkit/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// DocumentHandler serves the BOL vs Rate Con checker.
type DocumentHandler struct {
	Sample domain.DocumentRecord
	Random ports.RandomSource
	Logger *zap.Logger
}

// Compare reports every mismatched field plus the score and toast.
func (h *DocumentHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	defer obs.Time(r.Context(), h.Logger, "documents.Compare")(nil)

	form := services.DocumentForm{
		Reference: toDocumentRecord(req.Reference),
		Candidate: toDocumentRecord(req.Candidate),
	}
	out := form.Derive()

	writeJSON(w, r, http.StatusOK, dto.CompareResponse{
		Issues:       out.Report,
		Score:        out.Score,
		MaxScore:     out.MaxScore,
		Notification: toNotification(out.Notification),
	})
}

// SampleRecord returns the record loaded by "Load Sample".
func (h *DocumentHandler) SampleRecord(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, fromDocumentRecord(h.Sample))
}

// Mistake returns the record with one field perturbed for practice.
func (h *DocumentHandler) Mistake(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.MistakeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mutated, field := services.InjectMistake(toDocumentRecord(req.Record), h.Random)
	h.Logger.Debug("mistake injected", zap.String("field", string(field)))

	writeJSON(w, r, http.StatusOK, dto.MistakeResponse{
		Record: fromDocumentRecord(mutated),
		Field:  string(field),
	})
}
