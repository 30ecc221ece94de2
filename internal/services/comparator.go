package services

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/ports"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Compare checks a candidate document (the BOL) against the reference (the
// Rate Confirmation).
//
// Every field is normalized on both sides and compared for equality. All five
// fields are always checked; the report lists one message per mismatch in
// domain.DocumentFields order, and is empty when everything matches.
func Compare(reference, candidate domain.DocumentRecord) domain.MismatchReport {
	report := domain.MismatchReport{}
	for _, f := range domain.DocumentFields {
		if domain.NormalizeText(reference.Value(f)) != domain.NormalizeText(candidate.Value(f)) {
			report = append(report, f.MismatchMessage())
		}
	}
	return report
}

// Score is the number of matching fields out of len(domain.DocumentFields).
func Score(report domain.MismatchReport) int {
	return len(domain.DocumentFields) - len(report)
}

// DocumentNotification builds the toast shown when the user presses "Check BOL".
func DocumentNotification(report domain.MismatchReport) domain.Notification {
	if len(report) == 0 {
		return domain.Notification{
			Title:       "All matched!",
			Description: "BOL matches the Rate Confirmation. Ship it!",
			Severity:    domain.SeverityDefault,
		}
	}

	return domain.Notification{
		Title:       fmt.Sprintf("%d issue(s) found", len(report)),
		Description: strings.Join(report, " • "),
		Severity:    domain.SeverityDestructive,
	}
}

// InjectMistake returns a copy of rec with exactly one field perturbed, for
// training. The field is drawn uniformly from domain.DocumentFields.
// The perturbed value never normalizes to the original one.
func InjectMistake(rec domain.DocumentRecord, rng ports.RandomSource) (domain.DocumentRecord, domain.DocumentField) {
	f := domain.DocumentFields[rng.IntN(len(domain.DocumentFields))]

	original := rec.Value(f)
	mutated := perturb(f, original)
	if domain.NormalizeText(mutated) == domain.NormalizeText(original) {
		mutated = original + "-X"
	}

	return rec.With(f, mutated), f
}

var leadingNumber = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)(.*)$`)

// Fallback values for the training perturbation when the original cannot be
// shifted arithmetically.
const (
	fallbackTemperature  = "36F"
	fallbackLocation     = "Fort Worth, TX"
	fallbackDeliveryTime = "2025-08-08T12:00"
)

var nearbyCities = map[string]string{
	"dallas, tx":      "Fort Worth, TX",
	"fort worth, tx":  "Dallas, TX",
	"houston, tx":     "Pasadena, TX",
	"chicago, il":     "Joliet, IL",
	"atlanta, ga":     "Marietta, GA",
	"phoenix, az":     "Mesa, AZ",
	"los angeles, ca": "Long Beach, CA",
	"memphis, tn":     "Southaven, MS",
}

func perturb(f domain.DocumentField, v string) string {
	switch f {
	case domain.FieldTemperature:
		return shiftTemperature(v)
	case domain.FieldPONumber:
		return v + "-X"
	case domain.FieldSealNumber:
		return replaceLastChar(v)
	case domain.FieldLocation:
		if city, ok := nearbyCities[domain.NormalizeText(v)]; ok {
			return city
		}
		return fallbackLocation
	case domain.FieldDeliveryTime:
		t, ok := domain.ParseTimestamp(v, time.UTC)
		if !ok {
			return fallbackDeliveryTime
		}
		return t.Add(2 * time.Hour).Format(domain.TimestampLayout)
	}
	return v
}

// shiftTemperature adds two degrees to a leading number and keeps the unit suffix.
func shiftTemperature(v string) string {
	m := leadingNumber.FindStringSubmatch(v)
	if m == nil {
		return fallbackTemperature
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return fallbackTemperature
	}
	return strconv.FormatFloat(n+2, 'f', -1, 64) + m[2]
}

func replaceLastChar(v string) string {
	if v == "" {
		return "0"
	}

	r := []rune(v)
	if r[len(r)-1] == '0' {
		r[len(r)-1] = '1'
	} else {
		r[len(r)-1] = '0'
	}
	return string(r)
}
