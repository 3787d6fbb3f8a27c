package form

// CheckedValue is what a checked checkbox contributes to the payload
const CheckedValue = "on"

// Value is the raw value of one form control
type Value struct {
	Text       string `json:"value,omitempty"`
	Checked    bool   `json:"checked,omitempty"`
	IsCheckbox bool   `json:"checkbox,omitempty"`
}

// Text wraps a text, select or date input value
func Text(s string) Value {
	return Value{Text: s}
}

// Checkbox wraps a checkbox state
func Checkbox(checked bool) Value {
	return Value{Checked: checked, IsCheckbox: true}
}

// Values holds the current raw value of every control, keyed by field name
type Values map[string]Value

// Payload maps field names to submitted values
type Payload map[string]string

// Payload collects the values as a form would serialize them: text controls
// keep their raw value, checked boxes submit "on", unchecked boxes are omitted.
func (v Values) Payload() Payload {
	p := make(Payload, len(v))
	for name, val := range v {
		if val.IsCheckbox {
			if val.Checked {
				p[name] = CheckedValue
			}
			continue
		}
		p[name] = val.Text
	}
	return p
}
