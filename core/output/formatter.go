// Package output provides output formatting.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"kitchhub/core/form"
	"kitchhub/core/submission"
	"kitchhub/core/types"
	"kitchhub/core/ui"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is human-readable text
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCLI, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Price renders one displayed price
	Price(w io.Writer, result types.PriceResult) error

	// Quote renders every tier for a selection
	Quote(w io.Writer, quote *types.Quote) error

	// Options renders the closed selection sets
	Options(w io.Writer, locations, periods []types.Option) error

	// Field renders a single field check
	Field(w io.Writer, name string, valid bool) error

	// Submission renders a submit attempt
	Submission(w io.Writer, result form.SubmissionResult, receipt *submission.Receipt) error
}

// New returns the formatter for f
func New(f Format) Formatter {
	if f == FormatJSON {
		return jsonFormatter{}
	}
	return cliFormatter{}
}

// PriceView is the serialized form of a displayed price
type PriceView struct {
	types.PriceResult
	Display string `json:"display"`
	Caption string `json:"caption"`
}

// NewPriceView adds the derived display strings to a result
func NewPriceView(r types.PriceResult) PriceView {
	return PriceView{PriceResult: r, Display: r.Display(), Caption: r.Caption()}
}

type cliFormatter struct{}

func (cliFormatter) Format() Format { return FormatCLI }

func (cliFormatter) Price(out io.Writer, r types.PriceResult) error {
	w := ui.NewWriter(out)
	w.Println("%s", w.Strong(r.Display()))
	w.Println("%s", r.Caption())
	return w.Err()
}

func (cliFormatter) Quote(out io.Writer, q *types.Quote) error {
	if len(q.Prices) == 0 {
		return nil
	}
	w := ui.NewWriter(out)
	w.Println("%s", w.Heading(q.Prices[0].Caption()))
	for _, p := range q.Prices {
		w.Println("  %-8s %10s", p.Tier, p.Display())
	}
	return w.Err()
}

func (cliFormatter) Options(out io.Writer, locations, periods []types.Option) error {
	w := ui.NewWriter(out)
	sections := []struct {
		title string
		opts  []types.Option
	}{
		{"Villes", locations},
		{"Durées", periods},
	}
	for _, s := range sections {
		w.Println("%s", w.Heading(s.title+" :"))
		for _, o := range s.opts {
			w.Println("  %-10s %s", o.Key, o.Label)
		}
	}
	return w.Err()
}

func (cliFormatter) Field(out io.Writer, name string, valid bool) error {
	w := ui.NewWriter(out)
	if valid {
		w.Println("%s: %s", name, w.OK("ok"))
		return w.Err()
	}
	msg := ""
	if kind, ok := form.ParseFieldKind(name); ok {
		msg = " - " + form.Message(kind)
	}
	w.Println("%s: %s%s", name, w.Fail("invalide"), msg)
	return w.Err()
}

func (cliFormatter) Submission(out io.Writer, result form.SubmissionResult, receipt *submission.Receipt) error {
	w := ui.NewWriter(out)
	if !result.IsAccepted() {
		messages := result.Messages()
		for _, name := range result.InvalidFields {
			w.Println("%s: %s", name, w.Fail(messages[name]))
		}
		return w.Err()
	}

	if receipt == nil {
		return nil
	}
	for _, line := range receipt.Summary {
		w.Println("%s", line)
	}
	w.Println("Référence : %s", w.Strong(receipt.ID))
	return w.Err()
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Price(w io.Writer, r types.PriceResult) error {
	return writeJSON(w, NewPriceView(r))
}

func (jsonFormatter) Quote(w io.Writer, q *types.Quote) error {
	views := make([]PriceView, 0, len(q.Prices))
	for _, p := range q.Prices {
		views = append(views, NewPriceView(p))
	}
	return writeJSON(w, map[string]interface{}{
		"location": q.Location,
		"period":   q.Period,
		"prices":   views,
	})
}

func (jsonFormatter) Options(w io.Writer, locations, periods []types.Option) error {
	return writeJSON(w, map[string][]types.Option{
		"locations": locations,
		"periods":   periods,
	})
}

func (jsonFormatter) Field(w io.Writer, name string, valid bool) error {
	out := map[string]interface{}{"field": name, "valid": valid}
	if kind, ok := form.ParseFieldKind(name); ok && !valid {
		out["message"] = form.Message(kind)
	}
	return writeJSON(w, out)
}

func (jsonFormatter) Submission(w io.Writer, result form.SubmissionResult, receipt *submission.Receipt) error {
	return writeJSON(w, map[string]interface{}{
		"result":   result,
		"messages": result.Messages(),
		"receipt":  receipt,
	})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
