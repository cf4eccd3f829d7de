package leadform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEdit_ClearsOnlyEditedField(t *testing.T) {
	values := Draft{FieldName: "J"}
	errs := FieldErrors{FieldName: MsgNameTooShort, FieldEmail: MsgInvalidEmail}

	nextValues, nextErrs := ApplyEdit(values, errs, FieldName, "Jordan")

	assert.Equal(t, Draft{FieldName: "Jordan"}, nextValues)
	assert.Equal(t, FieldErrors{FieldEmail: MsgInvalidEmail}, nextErrs)

	// inputs are untouched
	assert.Equal(t, "J", values[FieldName])
	assert.Len(t, errs, 2)
}

func TestApplyEdit_NilMaps(t *testing.T) {
	values, errs := ApplyEdit(nil, nil, FieldCompany, "Acme")

	assert.Equal(t, Draft{FieldCompany: "Acme"}, values)
	assert.Empty(t, errs)
}

func TestStore_SetFieldClearsError(t *testing.T) {
	s := NewStore()
	s.SetErrors(FieldErrors{FieldEmail: MsgInvalidEmail, FieldIndustry: MsgSelectIndustry})

	s.SetField(FieldEmail, "jordan@")

	assert.Equal(t, "jordan@", s.Value(FieldEmail))
	assert.Empty(t, s.Error(FieldEmail), "edit should clear the field's error without revalidating")
	assert.Equal(t, MsgSelectIndustry, s.Error(FieldIndustry))
}

func TestStore_Reset(t *testing.T) {
	s := StoreFrom(validDraft())
	s.SetErrors(FieldErrors{FieldName: MsgNameTooShort})
	assert.False(t, s.Empty())

	s.Reset()

	assert.True(t, s.Empty())
	assert.Empty(t, s.Draft())
	assert.Empty(t, s.Errors())
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := StoreFrom(validDraft())

	d := s.Draft()
	d[FieldName] = "changed"
	assert.Equal(t, "Jordan Lee", s.Value(FieldName))

	s.SetErrors(FieldErrors{FieldName: MsgNameTooShort})
	e := s.Errors()
	delete(e, FieldName)
	assert.Equal(t, MsgNameTooShort, s.Error(FieldName))
}

func TestStoreFrom_IgnoresUnknownFields(t *testing.T) {
	s := StoreFrom(Draft{FieldName: "Jordan", Field("phone"): "555"})

	assert.Equal(t, Draft{FieldName: "Jordan"}, s.Draft())
}
