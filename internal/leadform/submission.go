package leadform

import "encoding/json"

// Submission is a fully validated, normalized form payload. The only way to
// obtain a non-zero Submission is Validate.
type Submission struct {
	name      string
	email     string
	company   string
	industry  Industry
	fleetSize FleetSize
	message   *string
}

func (s Submission) Name() string         { return s.name }
func (s Submission) Email() string        { return s.email }
func (s Submission) Company() string      { return s.company }
func (s Submission) Industry() Industry   { return s.industry }
func (s Submission) FleetSize() FleetSize { return s.fleetSize }

// Message returns the free-text message and whether one was given.
func (s Submission) Message() (string, bool) {
	if s.message == nil {
		return "", false
	}
	return *s.message, true
}

// IsZero reports whether s was not produced by Validate.
func (s Submission) IsZero() bool {
	return s.email == ""
}

type submissionJSON struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Industry  Industry  `json:"industry"`
	FleetSize FleetSize `json:"fleetSize"`
	Message   *string   `json:"message,omitempty"`
}

func (s Submission) MarshalJSON() ([]byte, error) {
	return json.Marshal(submissionJSON{
		Name:      s.name,
		Email:     s.email,
		Company:   s.company,
		Industry:  s.industry,
		FleetSize: s.fleetSize,
		Message:   s.message,
	})
}

// Draft converts s back into raw form values.
func (s Submission) Draft() Draft {
	d := Draft{
		FieldName:      s.name,
		FieldEmail:     s.email,
		FieldCompany:   s.company,
		FieldIndustry:  string(s.industry),
		FieldFleetSize: string(s.fleetSize),
	}
	if s.message != nil {
		d[FieldMessage] = *s.message
	}
	return d
}
