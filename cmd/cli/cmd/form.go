// Package cmd - validate and submit commands
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"kitchhub/core/engine"
	"kitchhub/core/form"
	"kitchhub/core/submission"
	"kitchhub/internal/errors"
	"kitchhub/internal/logging"
)

var (
	validateField   string
	validateValue   string
	validateChecked bool

	submitValues  = map[string]*string{}
	submitConsent bool
)

// errRejected makes the process exit non-zero on a rejected form
var errRejected = errors.New(errors.TypeValidation, "form rejected")

// validateCmd checks a single field
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a single form field",
	Long: `Check one field the way the page does when the field loses focus.
Fields outside the form schema are accepted without checks.

Examples:
  kitchhub validate --field email --value a@b.co
  kitchhub validate --field consent --checked`,
	RunE: runValidate,
}

// submitCmd validates the whole form and simulates its submission
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate the contact form and simulate its submission",
	RunE:  runSubmit,
}

// submitTextFields are the text controls exposed as flags, in form order
var submitTextFields = []struct {
	name  string
	usage string
}{
	{"lastname", "last name"},
	{"firstname", "first name"},
	{"email", "email address"},
	{"phone", "phone number"},
	{"city", "city key"},
	{"offer", "offer tier"},
	{form.FieldVisitDate, "preferred visit date (YYYY-MM-DD)"},
	{"message", "free-form message"},
}

func init() {
	validateCmd.Flags().StringVar(&validateField, "field", "", "field name")
	validateCmd.Flags().StringVar(&validateValue, "value", "", "raw field value")
	validateCmd.Flags().BoolVar(&validateChecked, "checked", false, "checkbox state (consent)")
	_ = validateCmd.MarkFlagRequired("field")

	for _, f := range submitTextFields {
		submitValues[f.name] = submitCmd.Flags().String(f.name, "", f.usage)
	}
	submitCmd.Flags().BoolVar(&submitConsent, "consent", false, "agree to be contacted")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(submitCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	core, err := loadCore()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	value := form.Text(validateValue)
	if kind, ok := form.ParseFieldKind(validateField); ok && kind.IsCheckbox() {
		value = form.Checkbox(validateChecked)
	}

	valid := core.NewForm().Blur(validateField, value)
	return f.Field(cmd.OutOrStdout(), validateField, valid)
}

// collectValues gathers the submitted controls; unset optional fields are omitted
func collectValues(cmd *cobra.Command) form.Values {
	values := form.Values{"consent": form.Checkbox(submitConsent)}
	for _, f := range submitTextFields {
		v := *submitValues[f.name]
		if _, validated := form.ParseFieldKind(f.name); validated || cmd.Flags().Changed(f.name) {
			values[f.name] = form.Text(v)
		}
	}
	return values
}

func runSubmit(cmd *cobra.Command, args []string) error {
	core, err := loadCore()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	submitter := submission.NewLogSubmitter(logging.Named("submission"))
	result, receipt, err := engine.Submit(context.Background(), core.NewForm(), collectValues(cmd), submitter)
	if err != nil {
		return err
	}

	if err := f.Submission(cmd.OutOrStdout(), result, receipt); err != nil {
		return err
	}
	if !result.IsAccepted() {
		return errRejected
	}
	return nil
}
