package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Alijeyrad/optima_web/internal/leadform"
)

// FormTokenField names the hidden input that identifies one rendered form.
// Posts repeating a token are answered with the first response.
const FormTokenField = "form_token"

// FormView is everything needed to render one lead form instance.
type FormView struct {
	Variant leadform.Variant
	Action  string
	Values  leadform.Draft
	Errors  leadform.FieldErrors
	Success bool
	Token   string
}

// EmptyFormView is a fresh form with no values and no errors.
func EmptyFormView(v leadform.Variant, action string) FormView {
	return FormView{
		Variant: v,
		Action:  action,
		Values:  leadform.Draft{},
		Errors:  leadform.FieldErrors{},
	}
}

// FormViewFrom snapshots a controller after a submit.
func FormViewFrom(c *leadform.Controller, action string) FormView {
	return FormView{
		Variant: c.Variant(),
		Action:  action,
		Values:  c.Store().Draft(),
		Errors:  c.Store().Errors(),
		Success: c.State() == leadform.StateSuccess,
	}
}

func (v FormView) fieldID(f leadform.Field) string {
	return v.Variant.Name + "-" + string(f)
}

type fieldSpec struct {
	Field       leadform.Field
	Label       string
	Type        string
	Placeholder string
	Options     []leadform.Option
	Required    bool
}

var formFields = []fieldSpec{
	{Field: leadform.FieldName, Label: "Name *", Type: "text", Placeholder: "Your full name", Required: true},
	{Field: leadform.FieldEmail, Label: "Business Email *", Type: "email", Placeholder: "you@company.com", Required: true},
	{Field: leadform.FieldCompany, Label: "Company *", Type: "text", Placeholder: "Company name", Required: true},
	{Field: leadform.FieldIndustry, Label: "Industry *", Placeholder: "Select industry", Options: leadform.IndustryOptions, Required: true},
	{Field: leadform.FieldFleetSize, Label: "Fleet Size *", Placeholder: "Select fleet size", Options: leadform.FleetSizeOptions, Required: true},
	{Field: leadform.FieldMessage, Label: "Additional Requirements", Placeholder: "Tell us about your specific logistics challenges..."},
}

// LeadForm renders the six lead form fields with inline errors.
func LeadForm(v FormView, submitLabel string) g.Node {
	return Form(
		Method("post"),
		Action(v.Action),
		g.Attr("novalidate"),
		Class("space-y-4"),
		Data("variant", v.Variant.Name),
		g.If(v.Token != "", Input(Type("hidden"), Name(FormTokenField), Value(v.Token))),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
			g.Group(g.Map(formFields[:len(formFields)-1], func(f fieldSpec) g.Node {
				return formField(v, f)
			})),
		),
		formField(v, formFields[len(formFields)-1]),
		Button(
			Type("submit"),
			Class("w-full rounded-md bg-gradient-to-r from-blue-500 to-cyan-500 px-6 py-3 font-medium text-white"),
			g.Text(submitLabel),
		),
	)
}

func formField(v FormView, f fieldSpec) g.Node {
	id := v.fieldID(f.Field)
	errID := id + "-error"
	value := v.Values[f.Field]
	msg := v.Errors[f.Field]

	inputClass := "w-full rounded-md border px-3 py-2 text-sm"
	if msg != "" {
		inputClass += " border-red-500"
	} else {
		inputClass += " border-slate-300"
	}

	common := []g.Node{
		ID(id),
		Name(string(f.Field)),
		Class(inputClass),
		g.If(f.Required, Required()),
		g.If(msg != "", Aria("invalid", "true")),
		g.If(msg != "", Aria("describedby", errID)),
	}

	var control g.Node
	switch {
	case f.Options != nil:
		control = Select(
			g.Group(common),
			Option(Value(""), g.If(value == "", Selected()), g.Text(f.Placeholder)),
			g.Group(g.Map(f.Options, func(o leadform.Option) g.Node {
				return Option(Value(o.Value), g.If(o.Value == value, Selected()), g.Text(o.Label))
			})),
		)
	case f.Field == leadform.FieldMessage:
		control = Textarea(
			g.Group(common),
			Rows("3"),
			Placeholder(f.Placeholder),
			g.Text(value),
		)
	default:
		control = Input(
			g.Group(common),
			Type(f.Type),
			Placeholder(f.Placeholder),
			Value(value),
		)
	}

	return Div(
		Class("space-y-1"),
		Label(For(id), Class("text-sm font-medium"), g.Text(f.Label)),
		control,
		g.If(msg != "", P(ID(errID), Class("text-sm text-red-600"), g.Text(msg))),
	)
}
