package domain

import "strings"

// DocumentField identifies one of the fields compared between a Rate
// Confirmation and a Bill of Lading.
type DocumentField string

const (
	FieldTemperature  DocumentField = "temperature"
	FieldPONumber     DocumentField = "po_number"
	FieldSealNumber   DocumentField = "seal_number"
	FieldLocation     DocumentField = "location"
	FieldDeliveryTime DocumentField = "delivery_time"
)

// DocumentFields lists every compared field in report order.
var DocumentFields = []DocumentField{
	FieldTemperature,
	FieldPONumber,
	FieldSealNumber,
	FieldLocation,
	FieldDeliveryTime,
}

var mismatchMessages = map[DocumentField]string{
	FieldTemperature:  "Temperature does not match",
	FieldPONumber:     "PO/PU# does not match",
	FieldSealNumber:   "Seal# does not match",
	FieldLocation:     "Delivery location does not match",
	FieldDeliveryTime: "Delivery time does not match",
}

// MismatchMessage returns the fixed report line for a field.
func (f DocumentField) MismatchMessage() string {
	return mismatchMessages[f]
}

// Represents the shipping details printed on one document.
// A DocumentRecord has no identity beyond its values.
type DocumentRecord struct {
	Temperature  string
	PONumber     string
	SealNumber   string
	Location     string
	DeliveryTime string
}

// Value returns the raw text of a field. Unknown fields read as empty.
func (r DocumentRecord) Value(f DocumentField) string {
	switch f {
	case FieldTemperature:
		return r.Temperature
	case FieldPONumber:
		return r.PONumber
	case FieldSealNumber:
		return r.SealNumber
	case FieldLocation:
		return r.Location
	case FieldDeliveryTime:
		return r.DeliveryTime
	}
	return ""
}

// With returns a copy of the record with one field replaced.
func (r DocumentRecord) With(f DocumentField, v string) DocumentRecord {
	switch f {
	case FieldTemperature:
		r.Temperature = v
	case FieldPONumber:
		r.PONumber = v
	case FieldSealNumber:
		r.SealNumber = v
	case FieldLocation:
		r.Location = v
	case FieldDeliveryTime:
		r.DeliveryTime = v
	}
	return r
}

// MismatchReport holds one message per mismatched field, in DocumentFields order.
type MismatchReport []string

// NormalizeText trims, lowercases and collapses whitespace runs to one space.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// DefaultSampleDocument is the record loaded by the "Load Sample" action.
func DefaultSampleDocument() DocumentRecord {
	return DocumentRecord{
		Temperature:  "34F",
		PONumber:     "PO-12345",
		SealNumber:   "SEAL9876",
		Location:     "Dallas, TX",
		DeliveryTime: "2025-08-08T10:00",
	}
}
