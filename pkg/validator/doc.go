// Package validator evaluates declarative, string-encoded rules attached to
// form fields and collects the failures of each pass.
//
// A field carries a pipe-delimited rule list such as
// "required|number|between:1,10". Each token is a rule name optionally
// followed by a colon and comma-separated arguments. Tokens starting with
// "x-" take their argument from an XRules configuration, which may also
// provide a custom error message:
//
//	xrules := validator.XRules{
//		"zip": validator.Rich("/^[0-9]{5}$/", "Enter a 5-digit postcode"),
//	}
//	// rule list: "required|x-regex:zip"
//
// # Architecture
//
// The package is organised around three layers:
//
//   - Parsing (parse.go, preprocess.go) turns tokens into AnnotatedRule
//     values. Preprocessing fills in the kind of size rules from the
//     "number", "int", "integer" and "array" markers placed before them and
//     resolves requiredIf against the referenced field's value.
//   - Rules (*_rules.go) are plain RuleFunc values. They return nil on
//     success, a *RuleError built with Invalid on failure, and any other
//     error for a configuration problem.
//   - The engine (engine.go) walks a Container's fields, looks rules up in
//     the validator's own rules first and the shared Registry second, and
//     records failures in an ErrorModel.
//
// Unknown rule names are skipped. The markers "bail" (stop at the first
// failure of the field) and "nullable" (stop when the value is empty) are
// handled by the engine.
//
// # Usage
//
//	v, err := validator.New(form,
//		validator.WithXRules(xrules),
//		validator.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	ok, err := v.Validate(ctx)
//	if err != nil {
//		// a rule is misconfigured; the pass was aborted
//	}
//	if !ok {
//		for name, msgs := range v.Errors().Messages() {
//			fmt.Println(name, msgs)
//		}
//	}
//
// # Custom rules
//
// Rules are registered by name on the global registry, on a Registry
// passed with WithRegistry, or on a single validator:
//
//	validator.AddRule("isFoo", func(value, args string) error {
//		if value == "foo" {
//			return nil
//		}
//		return validator.Invalid("is-foo")
//	})
//	v.AddInstanceRule("isFoo", strictFoo) // shadows the shared rule
//
// Registrations made after a validator was created are visible to it.
//
// # Events
//
// Every pass emits "validation:start", then "validation:succeeded" or
// "validation:failed", one "field:error" per failing field and finally
// "validation:end". Handlers run synchronously; WithBroadcaster additionally
// fans events out to asynchronous subscribers. A Renderer registered with
// WithRenderer is cleared on start and receives each field's failures.
//
// # Messages
//
// Failure messages are rendered from the process-wide i18n dictionary at
// the time of failure. FieldError.Localize re-renders them with another
// dictionary, keeping x-rule messages untouched.
package validator
