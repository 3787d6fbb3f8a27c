package form

// Outcome tags a submission result
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// SubmissionResult is either Accepted with a payload or Rejected with the
// first invalid field in schema order.
type SubmissionResult struct {
	Outcome Outcome `json:"outcome"`

	// Payload is set when accepted
	Payload Payload `json:"payload,omitempty"`

	// FirstInvalidField is set when rejected
	FirstInvalidField string `json:"first_invalid_field,omitempty"`

	// InvalidFields lists every failing field in schema order when rejected
	InvalidFields []string `json:"invalid_fields,omitempty"`
}

// Accepted builds an accepted result
func Accepted(payload Payload) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeAccepted, Payload: payload}
}

// Rejected builds a rejected result; invalid must be non-empty and in schema order
func Rejected(invalid []string) SubmissionResult {
	return SubmissionResult{
		Outcome:           OutcomeRejected,
		FirstInvalidField: invalid[0],
		InvalidFields:     invalid,
	}
}

// IsAccepted reports whether the form was accepted
func (r SubmissionResult) IsAccepted() bool {
	return r.Outcome == OutcomeAccepted
}

// Messages returns the error text of every invalid field, keyed by field name
func (r SubmissionResult) Messages() map[string]string {
	if r.IsAccepted() {
		return nil
	}
	out := make(map[string]string, len(r.InvalidFields))
	for _, name := range r.InvalidFields {
		if kind, ok := ParseFieldKind(name); ok {
			out[name] = Message(kind)
		}
	}
	return out
}
