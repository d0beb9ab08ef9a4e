package sysdrill

// ReportKind classifies the outcome of one submitted command.
type ReportKind string

const (
	// KindSuccess means the current step was satisfied and its reward
	// applied.
	KindSuccess ReportKind = "success"
	// KindProgress means the command matched an expectation but the step's
	// fix has not happened yet.
	KindProgress ReportKind = "progress"
	// KindHint means the command ran fine but is not what the step wants.
	KindHint ReportKind = "hint"
	// KindError means the command itself failed: unknown verb, bad
	// arguments, or a missing target.
	KindError ReportKind = "error"
)

// Report is the outcome of one Submit call, ready for presentation.
type Report struct {
	Kind ReportKind
	// Output is what the simulated shell printed, possibly empty.
	Output string
	// Message is the feedback line: success text, progress feedback, hint,
	// or error explanation, depending on Kind.
	Message string

	// XPAwarded is the XP granted by this submission, zero unless the step
	// completed.
	XPAwarded     int
	StepComplete  bool
	LevelComplete bool
	// GameComplete is set on the submission that solves the last step of
	// the last level.
	GameComplete bool
}
