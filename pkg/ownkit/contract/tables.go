package contract

// Datum returns the contract for the plain value type. Everything copies; no
// operation carries ownership.
func Datum() Class {
	return Class{
		Name: "Datum",
		Ops: []Op{
			{Name: "Get", Result: &Result{Type: "string"}},
			{Name: "Set", Params: []Param{{Name: "datum", Type: "string", Direction: In}}},
		},
	}
}

// Counted returns the contract for the reference-counted type.
func Counted() Class {
	return Class{
		Name:   "Counted",
		IncRef: "Ref",
		DecRef: "Unref",
		Ops: []Op{
			{Name: "Get", Result: &Result{Type: "string"}},
			{Name: "Clone", Result: &Result{Type: "Counted", CallerOwns: true}},
		},
	}
}

// Holder returns the contract for the container type: one operation per
// ownership discipline.
func Holder() Class {
	return Class{
		Name: "Holder",
		Ops: []Op{
			{Name: "AddPrefix",
				Params: []Param{{Name: "msg", Type: "string", Direction: InOut}},
				Result: &Result{Type: "int"}},

			{Name: "SetValue",
				Params: []Param{{Name: "d", Type: "Datum", Direction: In}}},
			{Name: "SetValueFrom",
				Params: []Param{{Name: "d", Type: "Datum", Direction: In}}},
			{Name: "CopyValueInto",
				Params: []Param{{Name: "d", Type: "Datum", Direction: Out}}},
			{Name: "Value",
				Result: &Result{Type: "Datum", CallerOwns: true}},

			{Name: "Adopt",
				Params: []Param{{Name: "o", Type: "Datum", Direction: In, Transfer: true}}},
			{Name: "Share",
				Params: []Param{{Name: "b", Type: "Datum", Direction: In}}},
			{Name: "SharedView",
				Result: &Result{Type: "Datum"}},
			{Name: "ReleaseOwned",
				Result: &Result{Type: "Datum", CallerOwns: true}},

			{Name: "AcquireCounted",
				Result: &Result{Type: "Counted", CallerOwns: true}},
			{Name: "PeekCounted",
				Result: &Result{Type: "Counted"}},
			{Name: "AdoptCounted",
				Params: []Param{{Name: "c", Type: "Counted", Direction: In, Transfer: true}}},
			{Name: "ShareCounted",
				Params: []Param{{Name: "c", Type: "Counted", Direction: In}}},
		},
	}
}

// Classes returns every contract table this package describes.
func Classes() []Class {
	return []Class{Datum(), Counted(), Holder()}
}
