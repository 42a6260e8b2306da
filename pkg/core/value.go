package core

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	// KindInt is a signed 64-bit integer.
	KindInt Kind = iota
	// KindText is a character sequence.
	KindText
	// KindDict is an ordered string-keyed mapping.
	KindDict
)

// String returns the kind name as it appears in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindText:
		return "TEXT"
	case KindDict:
		return "DICT"
	default:
		return "unknown"
	}
}

// Value is the closed variant over the three document types. A parsed
// document is one Value, usually a *Dict. Values are immutable once
// produced; a Dict is only ever extended or overwritten key-wise while
// the parse that owns it is still running.
type Value interface {
	// ValueKind reports which variant the value holds.
	ValueKind() Kind
	valueNode() // Marker method to close the variant
}

// Int is a signed 64-bit integer value.
type Int int64

// ValueKind implements Value.
func (Int) ValueKind() Kind { return KindInt }

func (Int) valueNode() {}

// Text is a character sequence value. No escape processing is ever
// applied; the bytes are carried verbatim from the source literal.
type Text string

// ValueKind implements Value.
func (Text) ValueKind() Kind { return KindText }

func (Text) valueNode() {}
