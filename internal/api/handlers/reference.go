package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/domain"
	"net/http"
)

// Widget identifiers used by the page descriptors.
const (
	WidgetWeights   = "weights"
	WidgetQuiz      = "quiz"
	WidgetDocuments = "documents"
	WidgetBilling   = "billing"
)

var (
	weightsSection   = dto.SectionResponse{Anchor: "checker", Widget: WidgetWeights, Title: "Axle Weight Checker"}
	quizSection      = dto.SectionResponse{Anchor: "quiz", Widget: WidgetQuiz, Title: "State Abbreviation Quiz"}
	documentsSection = dto.SectionResponse{Anchor: "bol", Widget: WidgetDocuments, Title: "BOL vs Rate Con Checker"}
	billingSection   = dto.SectionResponse{Anchor: "detention", Widget: WidgetBilling, Title: "Detention & Lumper Calculator"}
)

// ReferenceHandler exposes the read-only catalog and page layout.
type ReferenceHandler struct {
	Catalog domain.Catalog
}

// Limits returns the legal axle weight limits.
func (h *ReferenceHandler) Limits(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	l := h.Catalog.AxleLimits()
	writeJSON(w, r, http.StatusOK, dto.AxleLimitsResponse{
		Steer:           l.Steer,
		DriveWithAPU:    l.DriveWithAPU,
		DriveWithoutAPU: l.DriveWithoutAPU,
		Trailer:         l.Trailer,
	})
}

// States returns the full state table.
func (h *ReferenceHandler) States(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	states := h.Catalog.States()
	res := make([]dto.StateResponse, 0, len(states))
	for _, s := range states {
		res = append(res, toStateResponse(s))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Pages describes the landing page (three widgets behind fragment anchors)
// and the games hub (all four widgets in sequence).
func (h *ReferenceHandler) Pages(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PagesResponse{
		Pages: []dto.PageResponse{
			{
				Path:     "/",
				Title:    "Load Mastery Quest",
				Sections: []dto.SectionResponse{weightsSection, quizSection, documentsSection},
			},
			{
				Path:     "/games",
				Title:    "Games & Practice Hub",
				Sections: []dto.SectionResponse{documentsSection, quizSection, weightsSection, billingSection},
			},
		},
	})
}
