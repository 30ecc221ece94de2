package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/platform/obs"
	"dispatch-toolkit/internal/services"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// BillingHandler serves the detention and lumper calculator.
type BillingHandler struct {
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

// Calculate derives hours and charges. Garbage numbers and timestamps are
// coerced, never rejected.
func (h *BillingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.BillingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	defer obs.Time(r.Context(), h.Logger, "billing.Calculate")(nil)

	form := services.BillingForm{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		FreeHours: string(req.FreeHours),
		Rate:      string(req.Rate),
		Lumper:    string(req.Lumper),
		Location:  h.Location,
	}
	out := form.Derive()
	res := out.Result

	writeJSON(w, r, http.StatusOK, dto.BillingResponse{
		TotalHours:    res.TotalHours,
		BillableHours: res.BillableHours,
		Detention:     res.Detention,
		Lumper:        res.Lumper,
		Total:         res.Total,
		Formatted: dto.BillingFormattedResponse{
			TotalHours:    fmt.Sprintf("%.2f", res.TotalHours),
			BillableHours: fmt.Sprintf("%.2f", res.BillableHours),
			Detention:     services.FormatMoney(res.Detention),
			Lumper:        services.FormatMoney(res.Lumper),
			Total:         services.FormatMoney(res.Total),
		},
		Summary:      out.Summary,
		Notification: toNotification(out.Notification),
	})
}

// Defaults returns the values a fresh calculator starts with.
func (h *BillingHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}

	f := services.NewBillingForm(now().In(loc))
	writeJSON(w, r, http.StatusOK, dto.BillingDefaultsResponse{
		CheckIn:   f.CheckIn,
		CheckOut:  f.CheckOut,
		FreeHours: f.FreeHours,
		Rate:      f.Rate,
		Lumper:    f.Lumper,
	})
}
