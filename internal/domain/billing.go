package domain

import "time"

// Represents one detention/lumper calculation request.
// CheckIn and CheckOut stay as entered; unparseable values yield zero hours.
type BillingInput struct {
	CheckIn   string
	CheckOut  string
	FreeHours float64
	Rate      float64
	Lumper    float64
	Location  *time.Location
}

// Represents the derived charges for a BillingInput.
// Amounts keep full precision; rounding happens only when rendered.
type BillingResult struct {
	TotalHours    float64
	BillableHours float64
	Detention     float64
	Lumper        float64
	Total         float64
}
