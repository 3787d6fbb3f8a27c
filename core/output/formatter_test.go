package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"kitchhub/core/catalog"
	"kitchhub/core/form"
	"kitchhub/core/pricing"
	"kitchhub/core/submission"
	"kitchhub/core/types"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %s, %v", f, err)
	}
	if _, err := ParseFormat("html"); err == nil {
		t.Error("expected an error for html")
	}
}

func TestCLIPrice(t *testing.T) {
	calc := pricing.NewCalculator(catalog.Default())
	var buf bytes.Buffer

	if err := New(FormatCLI).Price(&buf, calc.MustCompute("paris", types.PeriodAnnual)); err != nil {
		t.Fatalf("Price: %v", err)
	}
	want := "502€\nEstimation pour Paris - Annuel (-15%)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONPrice(t *testing.T) {
	calc := pricing.NewCalculator(catalog.Default())
	var buf bytes.Buffer

	if err := New(FormatJSON).Price(&buf, calc.MustCompute("lille", types.PeriodQuarterly)); err != nil {
		t.Fatalf("Price: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["amount"].(float64) != 418 {
		t.Errorf("amount = %v, want 418", got["amount"])
	}
	if got["display"] != "418€" {
		t.Errorf("display = %v", got["display"])
	}
	if got["caption"] != "Estimation pour Lille - Trimestriel (-5%)" {
		t.Errorf("caption = %v", got["caption"])
	}
}

func TestCLIQuote(t *testing.T) {
	quote, err := pricing.NewCalculator(catalog.Default()).Quote("paris", types.PeriodMonthly)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := New(FormatCLI).Quote(&buf, quote); err != nil {
		t.Fatalf("Quote: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"590€", "990€", "1490€", "premium"} {
		if !strings.Contains(out, want) {
			t.Errorf("quote output missing %q:\n%s", want, out)
		}
	}
}

func TestCLISubmissionRejected(t *testing.T) {
	var buf bytes.Buffer
	result := form.Rejected([]string{"email", "consent"})

	if err := New(FormatCLI).Submission(&buf, result, nil); err != nil {
		t.Fatalf("Submission: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "email: ") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestCLISubmissionAccepted(t *testing.T) {
	var buf bytes.Buffer
	receipt := &submission.Receipt{
		ID:      "3f1c",
		Summary: []string{"Récapitulatif de votre demande :", "Nom : Dupont Léa"},
	}

	if err := New(FormatCLI).Submission(&buf, form.Accepted(form.Payload{}), receipt); err != nil {
		t.Fatalf("Submission: %v", err)
	}
	if !strings.Contains(buf.String(), "Référence : 3f1c") {
		t.Errorf("missing reference line: %q", buf.String())
	}
}

func TestFieldOutput(t *testing.T) {
	var buf bytes.Buffer
	_ = New(FormatCLI).Field(&buf, "phone", false)
	if !strings.Contains(buf.String(), form.Message(form.FieldPhone)) {
		t.Errorf("invalid field output should carry its message: %q", buf.String())
	}
}
