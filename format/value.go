package format

import (
	"time"
)

// ValueKind identifies the runtime type held in a Value slot.
type ValueKind uint8

const (
	KindMissing    ValueKind = iota // KindMissing represents the absence marker.
	KindNumeric                     // KindNumeric holds a float64.
	KindString                      // KindString holds text.
	KindNominal                     // KindNominal holds an index into the declared value list.
	KindDate                        // KindDate holds a timestamp.
	KindRelational                  // KindRelational holds nested rows.
)

func (k ValueKind) String() string {
	switch k {
	case KindMissing:
		return "Missing"
	case KindNumeric:
		return "Numeric"
	case KindString:
		return "String"
	case KindNominal:
		return "Nominal"
	case KindDate:
		return "Date"
	case KindRelational:
		return "Relational"
	default:
		return "Unknown"
	}
}

// Value is one typed slot of a row. Kind selects which payload field is
// meaningful; the zero Value is the missing marker.
type Value struct {
	Kind  ValueKind
	Num   float64
	Str   string
	Index int
	Time  time.Time
	Rows  []Row
}

// Row is one decoded instance body: one Value per attribute, in attribute
// order.
type Row []Value

// Instance is a top-level row together with its optional weight. Relational
// sub-rows never carry weights.
type Instance struct {
	Row       Row
	Weight    float64
	HasWeight bool
}

// Missing returns the absence marker.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Num returns a numeric value.
func Num(v float64) Value {
	return Value{Kind: KindNumeric, Num: v}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Nominal returns a nominal value by index into the declared value list.
func Nominal(index int) Value {
	return Value{Kind: KindNominal, Index: index}
}

// Date returns a date value.
func Date(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// Relational returns a nested-table value.
func Relational(rows ...Row) Value {
	return Value{Kind: KindRelational, Rows: rows}
}

// IsMissing reports whether the slot holds the absence marker.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Matches reports whether the slot's runtime type is legal for the given
// attribute. Missing matches every type; a nominal index must resolve within
// the declared value list; relational rows are checked recursively against
// the attribute's children.
func (v Value) Matches(attr *Attribute) bool {
	switch v.Kind {
	case KindMissing:
		return true
	case KindNumeric:
		return attr.Type == TypeNumeric
	case KindString:
		return attr.Type == TypeString
	case KindNominal:
		return attr.Type == TypeNominal && v.Index >= 0 && v.Index < len(attr.Values)
	case KindDate:
		return attr.Type == TypeDate
	case KindRelational:
		if attr.Type != TypeRelational {
			return false
		}
		for _, row := range v.Rows {
			if !row.Matches(attr.Children) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Matches reports whether the row matches the attribute list in length and
// per-slot type.
func (r Row) Matches(attrs []Attribute) bool {
	if len(r) != len(attrs) {
		return false
	}
	for i := range r {
		if !r[i].Matches(&attrs[i]) {
			return false
		}
	}

	return true
}
