// Package api - API types for the booking core
// These types define the JSON contract of the HTTP surface.
package api

import (
	"kitchhub/core/form"
	"kitchhub/core/output"
	"kitchhub/core/submission"
	"kitchhub/core/types"
)

// OptionsResponse is the output of GET /options
type OptionsResponse struct {
	Locations []types.Option `json:"locations"`
	Periods   []types.Option `json:"periods"`
	Tiers     []types.Tier   `json:"tiers"`

	// MinVisitDate is the earliest selectable visit date (YYYY-MM-DD)
	MinVisitDate string `json:"min_visit_date"`
}

// PriceResponse is the output of GET /price
type PriceResponse = output.PriceView

// FormCreatedResponse is the output of POST /forms
type FormCreatedResponse struct {
	ID     string                     `json:"id"`
	Fields map[string]form.FieldState `json:"fields"`
}

// EventType is a UI event driving field validation
type EventType string

const (
	EventBlur  EventType = "blur"
	EventInput EventType = "input"
)

// FieldEventRequest is the input to POST /forms/{id}/events
type FieldEventRequest struct {
	Type    EventType `json:"type"`
	Field   string    `json:"field"`
	Value   string    `json:"value"`
	Checked bool      `json:"checked"`
}

// FieldEventResponse reports a field's validity after an event
type FieldEventResponse struct {
	Field     string      `json:"field"`
	Status    form.Status `json:"status"`
	ShowError bool        `json:"show_error"`
	Rechecked bool        `json:"rechecked"`
	Message   string      `json:"message,omitempty"`
}

// SubmitRequest is the input to POST /forms/{id}/submit
type SubmitRequest struct {
	Values  map[string]string `json:"values"`
	Consent bool              `json:"consent"`
}

// SubmitResponse is the output of POST /forms/{id}/submit
type SubmitResponse struct {
	Result   form.SubmissionResult `json:"result"`
	Messages map[string]string     `json:"messages,omitempty"`
	Receipt  *submission.Receipt   `json:"receipt,omitempty"`
}

// ErrorBody is the error envelope of every failed request
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// toValues converts request values into form values; consent is a checkbox
func (r *SubmitRequest) toValues() form.Values {
	values := make(form.Values, len(r.Values)+1)
	for name, v := range r.Values {
		values[name] = form.Text(v)
	}
	values[form.FieldConsent.Name()] = form.Checkbox(r.Consent)
	return values
}

// toValue converts an event payload into a form value
func (r *FieldEventRequest) toValue() form.Value {
	if kind, ok := form.ParseFieldKind(r.Field); ok && kind.IsCheckbox() {
		return form.Checkbox(r.Checked)
	}
	return form.Text(r.Value)
}
