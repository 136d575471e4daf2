package emailcheck

// InvalidReason is the only reason surfaced to end users. Upstream outages,
// bad syntax and undeliverable mailboxes are deliberately indistinguishable.
const InvalidReason = "Invalid email address"

type VerdictStatus int

const (
	// VerdictSkipped means no sender address was supplied, nothing was checked
	VerdictSkipped VerdictStatus = iota
	VerdictValid
	VerdictInvalid
)

func (s VerdictStatus) String() string {
	switch s {
	case VerdictSkipped:
		return "skipped"
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Verdict is computed per submission and never cached
type Verdict struct {
	Status VerdictStatus
	Reason string
}

func Skipped() Verdict { return Verdict{Status: VerdictSkipped} }

func Valid() Verdict { return Verdict{Status: VerdictValid} }

func Invalid(reason string) Verdict {
	if reason == "" {
		reason = InvalidReason
	}
	return Verdict{Status: VerdictInvalid, Reason: reason}
}

// IsValid is false only for VerdictInvalid; a skipped check does not block a send
func (v Verdict) IsValid() bool {
	return v.Status != VerdictInvalid
}

// Response is the subset of the Abstract email validation payload we consume
type Response struct {
	Deliverability    string    `json:"deliverability"`
	IsValidFormat     flagValue `json:"is_valid_format"`
	IsDisposableEmail flagValue `json:"is_disposable_email"`
}

type flagValue struct {
	Value bool   `json:"value"`
	Text  string `json:"text,omitempty"`
}

const deliverable = "DELIVERABLE"

// Evaluate is the single deliverability predicate shared by the contact flow
// and the verify endpoint: well-formed AND deliverable AND not disposable.
func Evaluate(resp Response) Verdict {
	if resp.IsValidFormat.Value &&
		resp.Deliverability == deliverable &&
		!resp.IsDisposableEmail.Value {
		return Valid()
	}
	return Invalid(InvalidReason)
}
