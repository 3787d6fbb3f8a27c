package engine

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"kitchhub/core/catalog"
	"kitchhub/core/form"
	"kitchhub/core/submission"
	"kitchhub/core/types"
	"kitchhub/internal/errors"
)

func TestInitialize(t *testing.T) {
	f, calc, err := Initialize(form.DefaultSchema(), catalog.Default())
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	price, err := calc.Compute("paris", types.PeriodMonthly)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if price.Amount != 590 {
		t.Errorf("paris monthly = %d, want 590", price.Amount)
	}
	if f.State(form.FieldEmail).Checked {
		t.Error("a fresh form must start unchecked")
	}
}

func TestInitializeRejectsInvalidCatalog(t *testing.T) {
	c := catalog.New("", "")
	_ = c.AddLocation(catalog.LocationEntry{Key: "paris", Prices: types.TierPrices{Starter: 590, Pro: 990, Premium: 1490}})

	_, _, err := Initialize(form.DefaultSchema(), c)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("expected CONFIG_ERROR for a catalog without periods, got %v", err)
	}

	if _, _, err := Initialize(nil, catalog.Default()); err == nil {
		t.Error("expected an error without a schema")
	}
}

func TestFormsAreIndependent(t *testing.T) {
	core, err := New(form.DefaultSchema(), catalog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, b := core.NewForm(), core.NewForm()
	a.Blur("email", form.Text("nope"))
	if b.State(form.FieldEmail).Checked {
		t.Error("validating one form instance changed another")
	}
}

type failingSubmitter struct{}

func (failingSubmitter) Submit(context.Context, form.Payload) (*submission.Receipt, error) {
	return nil, fmt.Errorf("transport down")
}

func completeValues() form.Values {
	return form.Values{
		"lastname":  form.Text("Martin"),
		"firstname": form.Text("Hugo"),
		"email":     form.Text("hugo@exemple.fr"),
		"phone":     form.Text("0712345678"),
		"city":      form.Text("lille"),
		"offer":     form.Text("premium"),
		"consent":   form.Checkbox(true),
	}
}

func TestSubmitAcceptedResetsForm(t *testing.T) {
	f := form.NewEngine(form.DefaultSchema())

	result, receipt, err := Submit(context.Background(), f, completeValues(), submission.NewLogSubmitter(zap.NewNop()))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.IsAccepted() || receipt == nil {
		t.Fatalf("expected accepted with receipt, got %+v %v", result, receipt)
	}
	if len(receipt.Payload) != 7 {
		t.Errorf("payload has %d fields, want 7", len(receipt.Payload))
	}
	if f.State(form.FieldEmail).Checked {
		t.Error("form should be reset after a successful submission")
	}
}

func TestSubmitRejectedSkipsSubmitter(t *testing.T) {
	f := form.NewEngine(form.DefaultSchema())
	values := completeValues()
	values["phone"] = form.Text("12")

	result, receipt, err := Submit(context.Background(), f, values, failingSubmitter{})
	if err != nil {
		t.Fatalf("rejected form must not reach the submitter: %v", err)
	}
	if result.IsAccepted() || receipt != nil {
		t.Fatalf("expected rejection, got %+v", result)
	}
	if result.FirstInvalidField != "phone" {
		t.Errorf("first invalid = %s, want phone", result.FirstInvalidField)
	}
	if !f.State(form.FieldPhone).ShowsError() {
		t.Error("phone should show its error after a rejected submit")
	}
}

func TestSubmitFailureKeepsState(t *testing.T) {
	f := form.NewEngine(form.DefaultSchema())

	_, receipt, err := Submit(context.Background(), f, completeValues(), failingSubmitter{})
	if err == nil || receipt != nil {
		t.Fatal("expected the submitter error to be returned")
	}
	if !f.State(form.FieldEmail).Checked {
		t.Error("form must not be reset when the hand-off fails")
	}
}
