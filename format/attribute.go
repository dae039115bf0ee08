package format

import (
	"github.com/arloliu/arff/internal/hash"
)

// DefaultDateFormat is the date pattern used when a date attribute declares
// none. It follows the reference date-formatting mini-language, not Go's.
const DefaultDateFormat = "yyyy-MM-dd'T'HH:mm:ss"

// Attribute describes one typed column of a relation.
//
// Exactly one payload field is meaningful, selected by Type:
//   - TypeNominal: Values (ordered, duplicates permitted, order significant)
//   - TypeDate: DateFormat (empty means DefaultDateFormat)
//   - TypeRelational: Children
//
// An Attribute is immutable once constructed; equality is structural.
type Attribute struct {
	// Name is the attribute name as it appears in the declaration.
	Name string

	// Type is the declared attribute type.
	Type AttributeType

	// Values holds the declared nominal values, in declaration order.
	Values []string

	// DateFormat holds the date pattern for date attributes.
	DateFormat string

	// Children holds the nested attribute list for relational attributes.
	Children []Attribute
}

// NumericAttribute creates a numeric attribute.
func NumericAttribute(name string) Attribute {
	return Attribute{Name: name, Type: TypeNumeric}
}

// StringAttribute creates a string attribute.
func StringAttribute(name string) Attribute {
	return Attribute{Name: name, Type: TypeString}
}

// NominalAttribute creates a nominal attribute with the given value list.
// An empty list is legal; such an attribute can only hold missing values.
func NominalAttribute(name string, values ...string) Attribute {
	return Attribute{Name: name, Type: TypeNominal, Values: values}
}

// DateAttribute creates a date attribute. An empty pattern selects
// DefaultDateFormat.
func DateAttribute(name string, pattern string) Attribute {
	if pattern == "" {
		pattern = DefaultDateFormat
	}

	return Attribute{Name: name, Type: TypeDate, DateFormat: pattern}
}

// RelationalAttribute creates a relational attribute typed by children.
func RelationalAttribute(name string, children ...Attribute) Attribute {
	return Attribute{Name: name, Type: TypeRelational, Children: children}
}

// Format returns the effective date pattern for a date attribute.
func (a *Attribute) Format() string {
	if a.DateFormat == "" {
		return DefaultDateFormat
	}

	return a.DateFormat
}

// Equal reports structural equality: same name, same type, and same payload
// (nominal values, date format, or children, compared recursively).
func (a *Attribute) Equal(other *Attribute) bool {
	if a.Name != other.Name || a.Type != other.Type {
		return false
	}

	switch a.Type {
	case TypeNominal:
		if len(a.Values) != len(other.Values) {
			return false
		}
		for i, v := range a.Values {
			if v != other.Values[i] {
				return false
			}
		}
	case TypeDate:
		return a.Format() == other.Format()
	case TypeRelational:
		if len(a.Children) != len(other.Children) {
			return false
		}
		for i := range a.Children {
			if !a.Children[i].Equal(&other.Children[i]) {
				return false
			}
		}
	}

	return true
}

// Header describes one ARFF document (or one relational sub-block): the
// relation name and its ordered, non-empty attribute list. A Header is built
// once by the parser, or assembled by the caller for writing, and must not be
// mutated afterward.
type Header struct {
	// Relation is the relation name.
	Relation string

	// Attributes is the ordered attribute list.
	Attributes []Attribute
}

// AttributeIndex returns the index of the first attribute with the given
// name, or -1 if no attribute matches.
func (h *Header) AttributeIndex(name string) int {
	for i := range h.Attributes {
		if h.Attributes[i].Name == name {
			return i
		}
	}

	return -1
}

// Fingerprint computes a 64-bit identity over the relation name and the full
// recursive attribute structure. Two headers with the same fingerprint are
// almost certainly interchangeable for decoding; use Equal when a guarantee
// is needed. Useful for keying schema caches and detecting drift between
// files of the same dataset.
func (h *Header) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteString(h.Relation)
	for i := range h.Attributes {
		fingerprintAttr(d, &h.Attributes[i])
	}

	return d.Sum64()
}

// Equal reports whether two headers describe the same relation, using the
// fingerprint as a cheap negative test before the structural comparison.
func (h *Header) Equal(other *Header) bool {
	if h.Fingerprint() != other.Fingerprint() {
		return false
	}
	if h.Relation != other.Relation || len(h.Attributes) != len(other.Attributes) {
		return false
	}
	for i := range h.Attributes {
		if !h.Attributes[i].Equal(&other.Attributes[i]) {
			return false
		}
	}

	return true
}

func fingerprintAttr(d *hash.Digest, a *Attribute) {
	// Length-prefix separators keep {"ab","c"} and {"a","bc"} distinct.
	d.WriteUint64(uint64(len(a.Name)))
	d.WriteString(a.Name)
	d.WriteByte(byte(a.Type))

	switch a.Type {
	case TypeNominal:
		d.WriteUint64(uint64(len(a.Values)))
		for _, v := range a.Values {
			d.WriteUint64(uint64(len(v)))
			d.WriteString(v)
		}
	case TypeDate:
		f := a.Format()
		d.WriteUint64(uint64(len(f)))
		d.WriteString(f)
	case TypeRelational:
		d.WriteUint64(uint64(len(a.Children)))
		for i := range a.Children {
			fingerprintAttr(d, &a.Children[i])
		}
	}
}
