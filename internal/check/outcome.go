package check

// Outcome is the terminal result of one check invocation. It is produced
// exactly once per invocation and never revised.
type Outcome int

const (
	// Pass means the check completed without signaling failure.
	Pass Outcome = iota
	// Fail means the check signaled failure.
	Fail
	// Cancel means the run was interrupted while the check executed. It is
	// distinct from Fail: the run was aborted, not the check's target.
	Cancel
)

// String returns the label used in report output.
func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASSED"
	case Fail:
		return "FAILED"
	case Cancel:
		return "CANCEL"
	}
	return "UNKNOWN"
}
