package services

import (
	"dispatch-toolkit/internal/domain"
	"fmt"
	"math"
	"time"
)

const millisecondsPerHour = 3_600_000

// DiffHours returns the fractional hours between check-in and check-out.
//
// It fails soft: an unparseable timestamp, or a check-out that is not strictly
// after check-in, yields 0. The difference is taken at millisecond precision.
func DiffHours(checkIn, checkOut string, loc *time.Location) float64 {
	in, ok := domain.ParseTimestamp(checkIn, loc)
	if !ok {
		return 0
	}
	out, ok := domain.ParseTimestamp(checkOut, loc)
	if !ok {
		return 0
	}
	if !out.After(in) {
		return 0
	}

	return float64(out.Sub(in).Milliseconds()) / millisecondsPerHour
}

// ComputeBilling derives detention and lumper charges.
//
// FreeHours is subtracted as given, so a negative allowance increases the
// billable hours; only the final billable value is floored at 0.
func ComputeBilling(in domain.BillingInput) domain.BillingResult {
	total := DiffHours(in.CheckIn, in.CheckOut, in.Location)
	billable := math.Max(0, total-finite(in.FreeHours))
	detention := billable * finite(in.Rate)
	lumper := finite(in.Lumper)

	return domain.BillingResult{
		TotalHours:    total,
		BillableHours: billable,
		Detention:     detention,
		Lumper:        lumper,
		Total:         detention + lumper,
	}
}

// FormatMoney renders an amount with two decimals, e.g. "150.00".
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// BillingSummary is the inline text shown under the calculator.
func BillingSummary(r domain.BillingResult) string {
	return fmt.Sprintf(
		"Hours on site: %.2f • Billable: %.2f • Total: $%s (Detention $%s + Lumper $%s)",
		r.TotalHours, r.BillableHours, FormatMoney(r.Total), FormatMoney(r.Detention), FormatMoney(r.Lumper),
	)
}

// BillingNotification builds the toast shown when the user presses "Calculate".
func BillingNotification(r domain.BillingResult) domain.Notification {
	return domain.Notification{
		Title: "Calculated",
		Description: fmt.Sprintf(
			"Detention: $%s • Lumper: $%s • Total: $%s",
			FormatMoney(r.Detention), FormatMoney(r.Lumper), FormatMoney(r.Total),
		),
		Severity: domain.SeverityDefault,
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
