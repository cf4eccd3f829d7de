package leadform

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		FieldName:      "Jordan Lee",
		FieldEmail:     "jordan@example.com",
		FieldCompany:   "Acme Co",
		FieldIndustry:  "fmcg",
		FieldFleetSize: "100+",
	}
}

func TestValidate_NormalizesValidDraft(t *testing.T) {
	d := Draft{
		FieldName:      "Jordan Lee",
		FieldEmail:     " Jordan@Example.COM ",
		FieldCompany:   "Acme Co",
		FieldIndustry:  "fmcg",
		FieldFleetSize: "100+",
		FieldMessage:   "",
	}

	sub, errs := Validate(d)
	require.Nil(t, errs)
	require.False(t, sub.IsZero())

	assert.Equal(t, "Jordan Lee", sub.Name())
	assert.Equal(t, "jordan@example.com", sub.Email())
	assert.Equal(t, "Acme Co", sub.Company())
	assert.Equal(t, IndustryFMCG, sub.Industry())
	assert.Equal(t, FleetSizeOver100, sub.FleetSize())

	_, ok := sub.Message()
	assert.False(t, ok, "empty message should normalize to absent")
}

func TestValidate_TrimsTextFields(t *testing.T) {
	d := validDraft()
	d[FieldName] = "  Jordan Lee\t"
	d[FieldCompany] = "\nAcme Co "
	d[FieldMessage] = "  we run 40 trucks  "

	sub, errs := Validate(d)
	require.Nil(t, errs)
	assert.Equal(t, "Jordan Lee", sub.Name())
	assert.Equal(t, "Acme Co", sub.Company())

	msg, ok := sub.Message()
	require.True(t, ok)
	assert.Equal(t, "we run 40 trucks", msg)
}

func TestValidate_ShortNameOnly(t *testing.T) {
	d := Draft{
		FieldName:      " J",
		FieldEmail:     "JO@X.COM",
		FieldCompany:   "Acme",
		FieldIndustry:  "steel",
		FieldFleetSize: "11-50",
		FieldMessage:   "",
	}

	sub, errs := Validate(d)
	assert.True(t, sub.IsZero())
	assert.Equal(t, FieldErrors{FieldName: MsgNameTooShort}, errs)
}

func TestValidate_MissingSelections(t *testing.T) {
	tests := []struct {
		name string
		drop []Field
		want FieldErrors
	}{
		{
			name: "industry missing",
			drop: []Field{FieldIndustry},
			want: FieldErrors{FieldIndustry: MsgSelectIndustry},
		},
		{
			name: "fleet size missing",
			drop: []Field{FieldFleetSize},
			want: FieldErrors{FieldFleetSize: MsgSelectFleetSize},
		},
		{
			name: "both missing",
			drop: []Field{FieldIndustry, FieldFleetSize},
			want: FieldErrors{
				FieldIndustry:  MsgSelectIndustry,
				FieldFleetSize: MsgSelectFleetSize,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			for _, f := range tt.drop {
				delete(d, f)
			}
			sub, errs := Validate(d)
			assert.True(t, sub.IsZero())
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		want  string
	}{
		{"empty name", FieldName, "", MsgNameTooShort},
		{"whitespace name", FieldName, "    ", MsgNameTooShort},
		{"two rune name", FieldName, "Jo", ""},
		{"multibyte name counts runes", FieldName, "李", MsgNameTooShort},
		{"empty email", FieldEmail, "", MsgInvalidEmail},
		{"email without at", FieldEmail, "jordan.example.com", MsgInvalidEmail},
		{"email with spaces inside", FieldEmail, "jor dan@example.com", MsgInvalidEmail},
		{"short company", FieldCompany, " A ", MsgCompanyTooShort},
		{"unknown industry", FieldIndustry, "mining", MsgSelectIndustry},
		{"industry is case sensitive", FieldIndustry, "Steel", MsgSelectIndustry},
		{"unknown fleet size", FieldFleetSize, "1000+", MsgSelectFleetSize},
		{"message at limit", FieldMessage, strings.Repeat("a", MaxMessageLength), ""},
		{"message over limit", FieldMessage, strings.Repeat("a", MaxMessageLength+1), MsgMessageTooLong},
		{"message over limit only with padding", FieldMessage, "  " + strings.Repeat("a", MaxMessageLength) + "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d[tt.field] = tt.value

			_, errs := Validate(d)
			if tt.want == "" {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, FieldErrors{tt.field: tt.want}, errs)
		})
	}
}

func TestValidate_CollectsEveryField(t *testing.T) {
	_, errs := Validate(Draft{FieldMessage: strings.Repeat("x", MaxMessageLength+5)})

	assert.Equal(t, FieldErrors{
		FieldName:      MsgNameTooShort,
		FieldEmail:     MsgInvalidEmail,
		FieldCompany:   MsgCompanyTooShort,
		FieldIndustry:  MsgSelectIndustry,
		FieldFleetSize: MsgSelectFleetSize,
		FieldMessage:   MsgMessageTooLong,
	}, errs)
}

func TestValidate_DoesNotModifyDraft(t *testing.T) {
	d := validDraft()
	d[FieldEmail] = " Jordan@Example.COM "

	_, _ = Validate(d)
	assert.Equal(t, " Jordan@Example.COM ", d[FieldEmail])
}

func TestSubmission_MarshalJSON(t *testing.T) {
	sub, errs := Validate(validDraft())
	require.Nil(t, errs)

	raw, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Jordan Lee",
		"email": "jordan@example.com",
		"company": "Acme Co",
		"industry": "fmcg",
		"fleetSize": "100+"
	}`, string(raw))

	d := validDraft()
	d[FieldMessage] = "hello"
	sub, errs = Validate(d)
	require.Nil(t, errs)

	raw, err = json.Marshal(sub)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"hello"`)
}

func TestSubmission_DraftRoundTrip(t *testing.T) {
	d := validDraft()
	d[FieldMessage] = "hello"

	sub, errs := Validate(d)
	require.Nil(t, errs)

	again, errs := Validate(sub.Draft())
	require.Nil(t, errs)
	assert.Equal(t, sub, again)
}
