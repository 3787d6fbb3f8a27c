package engine

import (
	"context"
	"fmt"

	"kitchhub/core/form"
	"kitchhub/core/submission"
)

// Submit validates every field and, only when the form is accepted, hands the
// payload to the submitter and resets the form instance. A rejected form
// returns a nil receipt and leaves the field states showing their errors.
func Submit(ctx context.Context, f *form.Engine, values form.Values, s submission.Submitter) (form.SubmissionResult, *submission.Receipt, error) {
	result := f.ValidateAll(values)
	if !result.IsAccepted() {
		return result, nil, nil
	}

	receipt, err := s.Submit(ctx, result.Payload)
	if err != nil {
		return result, nil, fmt.Errorf("submit form: %w", err)
	}

	f.Reset()
	return result, receipt, nil
}
