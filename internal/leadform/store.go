package leadform

import (
	"maps"
	"sync"
)

// Draft is the raw, unvalidated content of a form keyed by field.
// A missing key and an empty string are treated the same.
type Draft map[Field]string

// FieldErrors maps a field to the message shown next to it.
type FieldErrors map[Field]string

// ApplyEdit returns copies of values and errs with value recorded for field
// and any error on field cleared. The inputs are not modified.
func ApplyEdit(values Draft, errs FieldErrors, field Field, value string) (Draft, FieldErrors) {
	nextValues := make(Draft, len(values)+1)
	maps.Copy(nextValues, values)
	nextValues[field] = value

	nextErrs := make(FieldErrors, len(errs))
	maps.Copy(nextErrs, errs)
	delete(nextErrs, field)

	return nextValues, nextErrs
}

// Store holds the draft values of one form instance and the errors produced
// by the last validation pass. It performs no validation itself.
type Store struct {
	mu     sync.RWMutex
	values Draft
	errs   FieldErrors
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		values: Draft{},
		errs:   FieldErrors{},
	}
}

// StoreFrom returns a store pre-filled with the known fields of d.
func StoreFrom(d Draft) *Store {
	s := NewStore()
	for f, v := range d {
		if f.Valid() {
			s.values[f] = v
		}
	}
	return s
}

// SetField overwrites the raw value of field and clears its error, if any.
// Errors only come back on the next full validation.
func (s *Store) SetField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values, s.errs = ApplyEdit(s.values, s.errs, field, value)
}

// Reset clears all values and errors.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = Draft{}
	s.errs = FieldErrors{}
}

// SetErrors replaces the recorded errors.
func (s *Store) SetErrors(errs FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = maps.Clone(errs)
	if s.errs == nil {
		s.errs = FieldErrors{}
	}
}

// Draft returns a snapshot of the current values.
func (s *Store) Draft() Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Errors returns a snapshot of the current errors.
func (s *Store) Errors() FieldErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.errs)
}

func (s *Store) Value(field Field) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[field]
}

func (s *Store) Error(field Field) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs[field]
}

// Empty reports whether no value and no error is recorded.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values) == 0 && len(s.errs) == 0
}
