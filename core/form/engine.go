package form

// Trigger is the per-field policy deciding when an edit re-runs validation
type Trigger int

const (
	// TriggerAwaitingFirstCheck validates on blur only; edits are ignored
	TriggerAwaitingFirstCheck Trigger = iota

	// TriggerRecheckingOnEdit validates on every edit while the field is invalid
	TriggerRecheckingOnEdit
)

// String returns the trigger name
func (t Trigger) String() string {
	switch t {
	case TriggerAwaitingFirstCheck:
		return "awaiting-first-check"
	case TriggerRecheckingOnEdit:
		return "rechecking-on-edit"
	default:
		return "unknown"
	}
}

// Status summarizes a field's validity
type Status string

const (
	StatusNotChecked Status = "not_checked"
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
)

// FieldState is the validity record of one field
type FieldState struct {
	Valid   bool    `json:"valid"`
	Checked bool    `json:"checked"`
	Trigger Trigger `json:"-"`
}

// Status returns the state as NotChecked, Valid or Invalid
func (s FieldState) Status() Status {
	switch {
	case !s.Checked:
		return StatusNotChecked
	case s.Valid:
		return StatusValid
	default:
		return StatusInvalid
	}
}

// ShowsError reports whether the field's error affordance is visible
func (s FieldState) ShowsError() bool {
	return s.Checked && !s.Valid
}

// Engine owns the validity state of one form instance.
// It is not safe for concurrent use; each form instance drives its own engine.
type Engine struct {
	schema *Schema
	states map[FieldKind]FieldState
}

// NewEngine creates an engine with every field not yet checked
func NewEngine(schema *Schema) *Engine {
	e := &Engine{schema: schema}
	e.Reset()
	return e
}

// Schema returns the schema the engine validates against
func (e *Engine) Schema() *Schema {
	return e.schema
}

// Reset returns every field to not-checked, awaiting its first blur
func (e *Engine) Reset() {
	e.states = make(map[FieldKind]FieldState, len(e.schema.fields))
	for _, kind := range e.schema.fields {
		e.states[kind] = FieldState{Trigger: TriggerAwaitingFirstCheck}
	}
}

// ValidateField evaluates the rule for name and records the outcome.
// Names outside the schema are not gated: no state changes and true is returned.
func (e *Engine) ValidateField(name string, v Value) bool {
	kind, ok := ParseFieldKind(name)
	if !ok {
		return true
	}
	return e.validate(kind, v)
}

func (e *Engine) validate(kind FieldKind, v Value) bool {
	valid := e.schema.check(kind, v)

	trigger := TriggerAwaitingFirstCheck
	if !valid {
		trigger = TriggerRecheckingOnEdit
	}
	e.states[kind] = FieldState{Valid: valid, Checked: true, Trigger: trigger}
	return valid
}

// Blur handles loss of focus: the field is always validated
func (e *Engine) Blur(name string, v Value) bool {
	return e.ValidateField(name, v)
}

// Edit handles a value change. The field is re-validated only while its
// trigger is rechecking-on-edit, i.e. after a failed check and until it passes.
// A valid field is left as is, even if the edit makes it invalid, until the
// next blur or submit.
func (e *Engine) Edit(name string, v Value) (state FieldState, rechecked bool) {
	kind, ok := ParseFieldKind(name)
	if !ok {
		return FieldState{}, false
	}
	if e.states[kind].Trigger == TriggerRecheckingOnEdit {
		e.validate(kind, v)
		rechecked = true
	}
	return e.states[kind], rechecked
}

// State returns the validity record of a field
func (e *Engine) State(kind FieldKind) FieldState {
	return e.states[kind]
}

// States returns every validity record keyed by field name
func (e *Engine) States() map[string]FieldState {
	out := make(map[string]FieldState, len(e.states))
	for kind, st := range e.states {
		out[kind.Name()] = st
	}
	return out
}

// ValidateAll validates every schema field, updating each field's state so all
// error affordances are shown at once. The form is accepted only if every rule
// passes; the payload then carries every value, validated or not.
func (e *Engine) ValidateAll(values Values) SubmissionResult {
	var invalid []string
	for _, kind := range e.schema.fields {
		if !e.validate(kind, values[kind.Name()]) {
			invalid = append(invalid, kind.Name())
		}
	}

	if len(invalid) > 0 {
		return Rejected(invalid)
	}
	return Accepted(values.Payload())
}

// CanSubmit reports whether values would be accepted, without changing state
func (e *Engine) CanSubmit(values Values) bool {
	return e.schema.CheckAll(values)
}
