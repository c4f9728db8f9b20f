package printer

// Options configures the Printer (spec.md §6 "Printer modes").
type Options struct {
	// WriteTypes emits type annotations, type-assertions, type-alias
	// statements, and type-function statements; when false those
	// constructs are omitted entirely.
	WriteTypes bool
	// DigitDotSpacing controls the optional space `symbol()` inserts
	// before a `.` that would otherwise fuse with a preceding digit
	// (spec.md §9 open question (a)); default false, matching the
	// source revision where the behavior is commented out.
	DigitDotSpacing bool
}
