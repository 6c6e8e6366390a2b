package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facile/pkg/form"
	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
)

type validateFlags struct {
	set        []string
	valuesFile string
	lang       string
	localesDir string
	output     string
}

// report is the outcome of validating one submission.
type report struct {
	Form   string              `json:"form"`
	Lang   string              `json:"lang"`
	Valid  bool                `json:"valid"`
	Fields []string            `json:"fields,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate FORM_FILE",
		Short: "Validate values against a form description",
		Long: `Validate values against a form description.

Values come from a dotenv style file (--values) and from --set flags,
which take precedence. Repeat --set for multi-valued fields. Checkboxes
are checked by any non-empty value.

Exits with status 1 when the values are invalid and 2 when the form
cannot be validated.`,
		Example: `  facile validate signup.yaml --set email=jane@example.com --set terms=on
  facile validate signup.yaml --values submission.env --lang de --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.set, "set", "s", nil, "field value as key=value (repeatable)")
	cmd.Flags().StringVar(&flags.valuesFile, "values", "", "dotenv file with field values")
	cmd.Flags().StringVarP(&flags.lang, "lang", "l", i18n.DefaultLanguage, "message language")
	cmd.Flags().StringVar(&flags.localesDir, "locales", "", "directory with additional locale files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "text", "output format: text or json")
	return cmd
}

func runValidate(cmd *cobra.Command, path string, flags validateFlags) error {
	if flags.output != "text" && flags.output != "json" {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("unknown output format %q", flags.output)}
	}

	tmpl, err := form.ParseFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	values, err := submittedValues(flags.valuesFile, flags.set)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	catalog, err := loadCatalog(cmd.Context(), flags.localesDir, i18n.DefaultLanguage)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	lang := catalog.Negotiate(flags.lang)

	bound := tmpl.Bind(values)
	v, err := bound.NewValidator(validator.WithRegistry(newRegistry()))
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	valid, err := v.Validate(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	rep := buildReport(bound.Name, lang, valid, v.Errors(), catalog.Get(lang))
	out := cmd.OutOrStdout()
	if flags.output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
	} else {
		printReport(out, rep)
	}

	if !valid {
		return &ExitError{Code: ExitInvalid, Err: errInvalid}
	}
	return nil
}

// submittedValues merges the values file with --set pairs. A key given
// with --set replaces the file's value.
func submittedValues(file string, pairs []string) (url.Values, error) {
	values := make(url.Values)
	if file != "" {
		env, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
		for k, v := range env {
			values.Set(k, v)
		}
	}

	set := make(url.Values)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		set.Add(key, value)
	}
	for k, vs := range set {
		values[k] = vs
	}
	return values, nil
}

func buildReport(name, lang string, valid bool, errs *validator.ErrorModel, dict i18n.Dictionary) report {
	rep := report{Form: name, Lang: lang, Valid: valid}
	if valid {
		return rep
	}
	rep.Errors = make(map[string][]string, errs.Len())
	for _, entry := range errs.Entries() {
		id := entry.Field.Name()
		rep.Fields = append(rep.Fields, id)
		for _, fe := range entry.Errors {
			rep.Errors[id] = append(rep.Errors[id], fe.Localize(dict))
		}
	}
	return rep
}

func printReport(w io.Writer, rep report) {
	if rep.Valid {
		fmt.Fprintln(w, successStyle.Render("✓ "+rep.Form+": valid"))
		return
	}

	noun := "fields"
	if len(rep.Fields) == 1 {
		noun = "field"
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("✗ %s: %d invalid %s", rep.Form, len(rep.Fields), noun)))
	for _, id := range rep.Fields {
		fmt.Fprintln(w, fieldStyle.Render(id))
		for _, msg := range rep.Errors[id] {
			fmt.Fprintln(w, messageStyle.Render("• "+msg))
		}
	}
}
