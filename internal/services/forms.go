package services

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/ports"
	"time"
)

// The forms below hold raw widget inputs. Derive is a pure function of the
// current inputs and can be called any number of times without drift.

// DocumentForm holds the two sides of the BOL vs Rate Con checker.
type DocumentForm struct {
	Reference domain.DocumentRecord
	Candidate domain.DocumentRecord
}

type DocumentOutcome struct {
	Report       domain.MismatchReport
	Score        int
	MaxScore     int
	Notification domain.Notification
}

func (f DocumentForm) Derive() DocumentOutcome {
	report := Compare(f.Reference, f.Candidate)
	return DocumentOutcome{
		Report:       report,
		Score:        Score(report),
		MaxScore:     len(domain.DocumentFields),
		Notification: DocumentNotification(report),
	}
}

// LoadSample puts the sample record on both sides.
func (f *DocumentForm) LoadSample(sample domain.DocumentRecord) {
	f.Reference = sample
	f.Candidate = sample
}

// IntroduceMistake replaces the candidate with a one-field perturbation of the reference.
func (f *DocumentForm) IntroduceMistake(rng ports.RandomSource) domain.DocumentField {
	var field domain.DocumentField
	f.Candidate, field = InjectMistake(f.Reference, rng)
	return field
}

// BillingForm holds the detention/lumper calculator inputs as typed text.
type BillingForm struct {
	CheckIn   string
	CheckOut  string
	FreeHours string
	Rate      string
	Lumper    string
	Location  *time.Location
}

// NewBillingForm returns the calculator defaults: both times at now, 2 free
// hours, $75/hr and no lumper.
func NewBillingForm(now time.Time) BillingForm {
	ts := now.Format(domain.TimestampLayout)
	return BillingForm{
		CheckIn:   ts,
		CheckOut:  ts,
		FreeHours: "2",
		Rate:      "75",
		Lumper:    "0",
		Location:  now.Location(),
	}
}

// Input coerces the typed text into a BillingInput.
func (f BillingForm) Input() domain.BillingInput {
	return domain.BillingInput{
		CheckIn:   f.CheckIn,
		CheckOut:  f.CheckOut,
		FreeHours: domain.ParseNumber(f.FreeHours),
		Rate:      domain.ParseNumber(f.Rate),
		Lumper:    domain.ParseNumber(f.Lumper),
		Location:  f.Location,
	}
}

type BillingOutcome struct {
	Result       domain.BillingResult
	Summary      string
	Notification domain.Notification
}

func (f BillingForm) Derive() BillingOutcome {
	r := ComputeBilling(f.Input())
	return BillingOutcome{
		Result:       r,
		Summary:      BillingSummary(r),
		Notification: BillingNotification(r),
	}
}

// WeightForm holds the axle weight checker inputs as typed text.
type WeightForm struct {
	Steer        string
	Drive        string
	Trailer      string
	APUInstalled bool
}

// NewWeightForm returns an empty form with the APU toggle on.
func NewWeightForm() WeightForm {
	return WeightForm{APUInstalled: true}
}

// Reset clears the weights and keeps the APU toggle.
func (f *WeightForm) Reset() {
	f.Steer, f.Drive, f.Trailer = "", "", ""
}

// Input coerces the typed text; empty, non-numeric and negative weights read as 0.
func (f WeightForm) Input() domain.WeightCheckInput {
	return domain.WeightCheckInput{
		Steer:        domain.ParseNonNegative(f.Steer),
		Drive:        domain.ParseNonNegative(f.Drive),
		Trailer:      domain.ParseNonNegative(f.Trailer),
		APUInstalled: f.APUInstalled,
	}
}

type WeightOutcome struct {
	Result       domain.WeightCheckResult
	AllLegal     bool
	Notification domain.Notification
}

func (f WeightForm) Derive(limits domain.AxleLimits) WeightOutcome {
	r := EvaluateWeights(f.Input(), limits)
	return WeightOutcome{
		Result:       r,
		AllLegal:     r.AllLegal(),
		Notification: WeightNotification(r),
	}
}
