package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/facile/pkg/form"
)

// ErrorsID is the id of the element holding a field's messages.
func ErrorsID(fieldID string) string {
	return fieldID + "-errors"
}

// StatusID is the id of the element showing a form's last outcome.
func StatusID(formName string) string {
	return formName + "-status"
}

// html accumulates writes and keeps the first error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + "=\"")
	h.text(value)
	h.raw("\"")
}

func (h *html) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

// FieldErrors renders the message list of a field. An empty list renders
// an empty container so a patch clears previous messages.
func FieldErrors(fieldID string, messages []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		writeFieldErrors(h, fieldID, messages)
		return h.err
	})
}

func writeFieldErrors(h *html, fieldID string, messages []string) {
	h.raw("<div")
	h.attr("id", ErrorsID(fieldID))
	h.attr("class", "validator-errors")
	h.raw(">")
	for _, msg := range messages {
		h.raw(`<p class="validator-err">`)
		h.text(msg)
		h.raw("</p>")
	}
	h.raw("</div>")
}

// ErrorToast renders a dismissable error notification.
func ErrorToast(info ErrorInfo, requestID string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<div")
		h.attr("class", "toast toast-"+info.Type)
		h.attr("role", "alert")
		if requestID != "" {
			h.attr("data-request-id", requestID)
		}
		h.raw("><p>")
		h.text(info.Message)
		h.raw("</p></div>")
		return h.err
	})
}

// StatusBadge renders the outcome of a form's last validation pass.
func StatusBadge(formName string, valid bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<span")
		h.attr("id", StatusID(formName))
		if valid {
			h.attr("class", "status status-valid")
			h.raw(">valid</span>")
		} else {
			h.attr("class", "status status-invalid")
			h.raw(">invalid</span>")
		}
		return h.err
	})
}

// FormPage renders a complete page for f. messages maps field ids to the
// messages shown under them.
func FormPage(f *form.Form, lang string, messages map[string][]string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		title := f.Title
		if title == "" {
			title = f.Name
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw("><head><meta charset=\"utf-8\"><title>")
		h.text(title)
		h.raw(`</title><script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>`)
		h.raw("</head><body><div id=\"toast-container\"></div><h1>")
		h.text(title)
		h.raw("</h1>")

		action := f.Action
		if action == "" {
			action = "/forms/" + f.Name + "/validate"
		}
		h.raw("<form")
		h.attr("id", f.Name)
		h.attr("method", "post")
		h.attr("action", action)
		h.attr("data-on:submit", fmt.Sprintf("@post('%s', {contentType: 'form'})", action))
		h.attr("novalidate", "")
		h.raw(">")
		for _, field := range f.Controls {
			writeField(h, field, messages[field.ID])
		}
		h.raw(`<button type="submit">Submit</button>`)
		writeStatus(h, f.Name)
		h.raw("</form></body></html>")
		return h.err
	})
}

func writeStatus(h *html, formName string) {
	h.raw("<span")
	h.attr("id", StatusID(formName))
	h.attr("class", "status")
	h.raw("></span>")
}

func writeField(h *html, f *form.Field, messages []string) {
	if f.Hidden && f.Tab == "" {
		h.raw("<input")
		h.attr("type", "hidden")
		h.attr("id", f.ID)
		h.attr("name", f.SubmitName())
		h.attr("value", f.Raw())
		h.raw(">")
		return
	}

	h.raw("<div")
	h.attr("class", "field")
	if f.Tab != "" {
		h.attr("data-tab", f.Tab)
		h.flag("hidden", f.Hidden)
	}
	h.raw(">")

	if f.Label != "" && f.Type != form.TypeCheckbox && f.Type != form.TypeRadio {
		h.raw("<label")
		h.attr("for", f.ID)
		h.raw(">")
		h.text(f.Label)
		h.raw("</label>")
	}

	switch f.Type {
	case form.TypeTextarea:
		h.raw("<textarea")
		h.attr("id", f.ID)
		h.attr("name", f.SubmitName())
		if f.Placeholder != "" {
			h.attr("placeholder", f.Placeholder)
		}
		h.raw(">")
		h.text(f.Raw())
		h.raw("</textarea>")
	case form.TypeSelect:
		h.raw("<select")
		h.attr("id", f.ID)
		h.attr("name", f.SubmitName())
		h.flag("multiple", f.Multiple)
		h.raw(">")
		for _, opt := range f.Options {
			label := opt.Label
			if label == "" {
				label = opt.Value
			}
			h.raw("<option")
			h.attr("value", opt.Value)
			h.flag("selected", f.IsSelected(opt.Value))
			h.raw(">")
			h.text(label)
			h.raw("</option>")
		}
		h.raw("</select>")
	case form.TypeCheckbox, form.TypeRadio:
		h.raw("<label><input")
		h.attr("type", string(f.Type))
		h.attr("id", f.ID)
		h.attr("name", f.SubmitName())
		if f.Default != "" {
			h.attr("value", f.Default)
		}
		h.flag("checked", f.Checked)
		h.raw("> ")
		h.text(f.Label)
		h.raw("</label>")
	default:
		typ := f.Type
		if typ == "" {
			typ = form.TypeText
		}
		h.raw("<input")
		h.attr("type", string(typ))
		h.attr("id", f.ID)
		h.attr("name", f.SubmitName())
		h.attr("value", f.Raw())
		if f.Placeholder != "" {
			h.attr("placeholder", f.Placeholder)
		}
		h.raw(">")
	}

	writeFieldErrors(h, f.ID, messages)
	h.raw("</div>")
}
