package ownkit

// Valuer is the capability set shared by the plain value types. Anything
// holding a single string datum satisfies it.
type Valuer interface {
	Get() string
}

// Datum is a copyable value type: one string field, no identity beyond its
// data. Copies are independent; mutating one never affects another.
type Datum struct {
	datum string
}

// NewDatum constructs a Datum holding the given string.
func NewDatum(datum string) Datum {
	return Datum{datum: datum}
}

// Get returns the stored string.
func (d Datum) Get() string {
	return d.datum
}

// Set replaces the stored string in place.
func (d *Datum) Set(datum string) {
	d.datum = datum
}

// TaggedDatum is a distinct concrete type with the same capability set as
// Datum. It adds no behavior; it exists so that code handling Valuer values
// can be exercised against more than one concrete type.
type TaggedDatum struct {
	Datum
}

// NewTaggedDatum constructs a TaggedDatum holding the given string.
func NewTaggedDatum(datum string) TaggedDatum {
	return TaggedDatum{Datum: NewDatum(datum)}
}
