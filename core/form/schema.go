package form

import "fmt"

// Schema is the fixed, ordered set of validated fields
type Schema struct {
	fields      []FieldKind
	phonePolicy PhonePolicy
}

// SchemaOption configures a schema
type SchemaOption func(*Schema)

// WithPhonePolicy selects the phone rule
func WithPhonePolicy(p PhonePolicy) SchemaOption {
	return func(s *Schema) {
		s.phonePolicy = p
	}
}

// NewSchema creates the lead form schema
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		fields:      append([]FieldKind(nil), AllFields...),
		phonePolicy: PhoneDigits,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch s.phonePolicy {
	case PhoneDigits, PhoneFrench:
	default:
		return nil, fmt.Errorf("unknown phone policy %q", s.phonePolicy)
	}
	return s, nil
}

// DefaultSchema returns the schema with the loose phone rule
func DefaultSchema() *Schema {
	s, _ := NewSchema()
	return s
}

// Fields returns a copy of the validated fields in schema order
func (s *Schema) Fields() []FieldKind {
	return append([]FieldKind(nil), s.fields...)
}

// PhonePolicy returns the active phone rule
func (s *Schema) PhonePolicy() PhonePolicy {
	return s.phonePolicy
}

// Check evaluates a single rule without touching any state
func (s *Schema) Check(kind FieldKind, v Value) bool {
	return s.check(kind, v)
}

// CheckAll reports whether every rule passes for values
func (s *Schema) CheckAll(values Values) bool {
	for _, kind := range s.fields {
		if !s.check(kind, values[kind.Name()]) {
			return false
		}
	}
	return true
}
