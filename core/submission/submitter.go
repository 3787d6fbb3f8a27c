// Package submission - Simulated hand-off of accepted lead forms
// Nothing leaves the process: the payload is logged and summarized.
package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kitchhub/core/form"
)

// Receipt acknowledges a submitted payload
type Receipt struct {
	ID          string       `json:"id"`
	SubmittedAt time.Time    `json:"submitted_at"`
	Payload     form.Payload `json:"payload"`
	Summary     []string     `json:"summary"`
}

// Submitter receives accepted payloads
type Submitter interface {
	Submit(ctx context.Context, payload form.Payload) (*Receipt, error)
}

// LogSubmitter logs accepted payloads instead of transmitting them
type LogSubmitter struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewLogSubmitter creates a submitter writing to logger
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	return &LogSubmitter{
		logger: logger,
		now:    time.Now,
	}
}

// Submit logs the payload and returns a receipt with a rendered summary
func (s *LogSubmitter) Submit(ctx context.Context, payload form.Payload) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summarize(payload)

	receipt := &Receipt{
		ID:          uuid.NewString(),
		SubmittedAt: s.now().UTC(),
		Payload:     payload,
		Summary:     summary,
	}

	s.logger.Info("Form submitted successfully",
		zap.String("submission_id", receipt.ID),
		zap.Any("payload", map[string]string(payload)),
	)
	return receipt, nil
}

// Summarize renders the confirmation recap shown after a successful submit.
// A visit date that is not YYYY-MM-DD is shown as entered.
func Summarize(p form.Payload) []string {
	lines := []string{
		"Récapitulatif de votre demande :",
		"Nom : " + strings.TrimSpace(p["lastname"]+" "+p["firstname"]),
		"Email : " + p["email"],
		"Ville : " + p["city"],
		"Offre : " + p["offer"],
	}

	if visit := p[form.FieldVisitDate]; visit != "" {
		if formatted, err := form.FormatVisitDate(visit); err == nil {
			visit = formatted
		}
		lines = append(lines, "Date de visite souhaitée : "+visit)
	}

	return lines
}
