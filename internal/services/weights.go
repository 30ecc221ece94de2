package services

import (
	"dispatch-toolkit/internal/domain"
	"math"
)

// EvaluateWeights checks each axle group against its legal limit.
//
// The drive limit depends on the APU flag. Negative weights are treated as 0.
// An infinite weight is capped at the largest float64, so it stays illegal
// and remains encodable as JSON.
func EvaluateWeights(in domain.WeightCheckInput, limits domain.AxleLimits) domain.WeightCheckResult {
	return domain.WeightCheckResult{
		Steer:   checkAxle(domain.AxleSteer, in.Steer, limits.Steer),
		Drive:   checkAxle(domain.AxleDrive, in.Drive, limits.DriveLimit(in.APUInstalled)),
		Trailer: checkAxle(domain.AxleTrailer, in.Trailer, limits.Trailer),
	}
}

func checkAxle(axle domain.Axle, weight, limit float64) domain.AxleCheck {
	weight = domain.NonNegative(weight)
	if math.IsInf(weight, 1) {
		weight = math.MaxFloat64
	}
	return domain.AxleCheck{
		Axle:          axle,
		Weight:        weight,
		IsLegal:       weight <= limit,
		OverageAmount: math.Max(0, weight-limit),
		LimitUsed:     limit,
	}
}

// WeightNotification builds the toast shown when the user presses "Quick Check".
func WeightNotification(r domain.WeightCheckResult) domain.Notification {
	if !r.AllLegal() {
		return domain.Notification{
			Title:       "Over legal limits",
			Description: "Adjust axle weights to meet legal limits.",
			Severity:    domain.SeverityDestructive,
		}
	}

	return domain.Notification{
		Title:       "All good!",
		Description: "Weights are within legal limits.",
		Severity:    domain.SeverityDefault,
	}
}
