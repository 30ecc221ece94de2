package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Axle names an axle group checked by the weight evaluator.
type Axle string

const (
	AxleSteer   Axle = "steer"
	AxleDrive   Axle = "drive"
	AxleTrailer Axle = "trailer"
)

// Legal per-axle weight limits in pounds.
type AxleLimits struct {
	Steer           float64
	DriveWithAPU    float64
	DriveWithoutAPU float64
	Trailer         float64
}

// DefaultAxleLimits returns the built-in limits.
func DefaultAxleLimits() AxleLimits {
	return AxleLimits{
		Steer:           12999,
		DriveWithAPU:    34500,
		DriveWithoutAPU: 34000,
		Trailer:         34100,
	}
}

// DriveLimit selects the drive-axle limit; an installed APU earns the higher one.
func (l AxleLimits) DriveLimit(apuInstalled bool) float64 {
	if apuInstalled {
		return l.DriveWithAPU
	}
	return l.DriveWithoutAPU
}

// Represents coerced axle weights in pounds.
type WeightCheckInput struct {
	Steer        float64
	Drive        float64
	Trailer      float64
	APUInstalled bool
}

// Legality verdict for one axle group.
type AxleCheck struct {
	Axle          Axle
	Weight        float64
	IsLegal       bool
	OverageAmount float64
	LimitUsed     float64
}

// Status renders the badge text, e.g. "Over by 1 lb • Limit 12,999 lb".
func (c AxleCheck) Status() string {
	if c.IsLegal {
		return fmt.Sprintf("Legal • Limit %s lb", FormatPounds(c.LimitUsed))
	}
	return fmt.Sprintf("Over by %s lb • Limit %s lb", FormatPounds(c.OverageAmount), FormatPounds(c.LimitUsed))
}

// Per-axle verdicts for all three axle groups.
type WeightCheckResult struct {
	Steer   AxleCheck
	Drive   AxleCheck
	Trailer AxleCheck
}

// Checks returns the verdicts in steer, drive, trailer order.
func (r WeightCheckResult) Checks() []AxleCheck {
	return []AxleCheck{r.Steer, r.Drive, r.Trailer}
}

// AllLegal is true only when every axle group is within its limit.
func (r WeightCheckResult) AllLegal() bool {
	return r.Steer.IsLegal && r.Drive.IsLegal && r.Trailer.IsLegal
}

var poundsPrinter = message.NewPrinter(language.English)

// FormatPounds renders a weight with thousands separators and at most three decimals.
func FormatPounds(v float64) string {
	return poundsPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
