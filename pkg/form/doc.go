// Package form describes HTML forms in YAML or JSON and binds submitted
// values to them so they can be validated.
//
//	name: signup
//	xrules:
//	  adult:
//	    value: 18
//	    message: You must be an adult
//	fields:
//	  - id: email
//	    type: email
//	    rules: required|email
//	  - id: age
//	    type: number
//	    rules: required|number|x-min:adult
//	  - id: terms
//	    type: checkbox
//	    rules: accepted
//
// A *Form implements validator.Container. Checkboxes and radios report
// validator.CheckedValue when active and an empty string otherwise;
// multi-selects report their values joined by commas. Hidden fields are
// skipped unless they belong to a tab.
//
//	tmpl, _ := store.Get("signup")
//	bound := tmpl.Bind(r.PostForm)
//	v, _ := bound.NewValidator()
//	ok, err := v.Validate(ctx)
package form
