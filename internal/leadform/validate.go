package leadform

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MaxMessageLength = 1000

// Error messages shown next to invalid fields.
const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgCompanyTooShort = "Company name must be at least 2 characters"
	MsgSelectIndustry  = "Please select an industry"
	MsgSelectFleetSize = "Please select fleet size"
	MsgMessageTooLong  = "Message is too long"
)

type rule struct {
	tag string
	msg string
}

// rules are checked per field in order; the first failing rule wins.
var rules = map[Field][]rule{
	FieldName:      {{tag: "min=2", msg: MsgNameTooShort}},
	FieldEmail:     {{tag: "required,email", msg: MsgInvalidEmail}},
	FieldCompany:   {{tag: "min=2", msg: MsgCompanyTooShort}},
	FieldIndustry:  {{tag: "required,oneof=" + joinOptions(IndustryOptions), msg: MsgSelectIndustry}},
	FieldFleetSize: {{tag: "required,oneof=" + joinOptions(FleetSizeOptions), msg: MsgSelectFleetSize}},
	FieldMessage:   {{tag: "max=" + strconv.Itoa(MaxMessageLength), msg: MsgMessageTooLong}},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func joinOptions(opts []Option) string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return strings.Join(values, " ")
}

// normalize trims every field and lower-cases the email.
func normalize(d Draft) Draft {
	out := make(Draft, len(Fields))
	for _, f := range Fields {
		out[f] = strings.TrimSpace(d[f])
	}
	out[FieldEmail] = strings.ToLower(out[FieldEmail])
	return out
}

// Validate checks the whole draft at once. It returns either a Submission and
// nil, or a zero Submission and one message per invalid field.
func Validate(d Draft) (Submission, FieldErrors) {
	n := normalize(d)

	errs := FieldErrors{}
	for _, f := range Fields {
		for _, r := range rules[f] {
			if err := validate.Var(n[f], r.tag); err != nil {
				errs[f] = r.msg
				break
			}
		}
	}
	if len(errs) > 0 {
		return Submission{}, errs
	}

	sub := Submission{
		name:      n[FieldName],
		email:     n[FieldEmail],
		company:   n[FieldCompany],
		industry:  Industry(n[FieldIndustry]),
		fleetSize: FleetSize(n[FieldFleetSize]),
	}
	if msg := n[FieldMessage]; msg != "" {
		sub.message = &msg
	}
	return sub, nil
}
