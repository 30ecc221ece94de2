package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/obs"
	"dispatch-toolkit/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// WeightHandler serves the axle weight checker.
type WeightHandler struct {
	Limits domain.AxleLimits
	Logger *zap.Logger
}

// Check evaluates the three axle groups. An omitted apu flag means installed.
func (h *WeightHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.WeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	defer obs.Time(r.Context(), h.Logger, "weights.Check")(nil)

	form := services.NewWeightForm()
	form.Steer = string(req.Steer)
	form.Drive = string(req.Drive)
	form.Trailer = string(req.Trailer)
	if req.APU != nil {
		form.APUInstalled = *req.APU
	}

	out := form.Derive(h.Limits)

	writeJSON(w, r, http.StatusOK, dto.WeightResponse{
		Steer:        toAxleCheck(out.Result.Steer),
		Drive:        toAxleCheck(out.Result.Drive),
		Trailer:      toAxleCheck(out.Result.Trailer),
		AllLegal:     out.AllLegal,
		Notification: toNotification(out.Notification),
	})
}

func toAxleCheck(c domain.AxleCheck) dto.AxleCheckResponse {
	return dto.AxleCheckResponse{
		Axle:          string(c.Axle),
		Weight:        c.Weight,
		IsLegal:       c.IsLegal,
		OverageAmount: c.OverageAmount,
		LimitUsed:     c.LimitUsed,
		Status:        c.Status(),
	}
}
