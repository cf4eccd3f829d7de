package submit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewSubmitCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

var validArgs = []string{
	"--name", "Jordan Lee",
	"--email", " Jordan@Example.COM ",
	"--company", "Acme Logistics",
	"--industry", "steel",
	"--fleet-size", "11-50",
}

func TestSubmit_Accepted(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	out, err := run(t, append(validArgs, "--endpoint", srv.URL)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Request received")
	assert.Equal(t, "jordan@example.com", got["email"])
	assert.NotContains(t, got, "message")
}

func TestSubmit_ValidationFailsWithoutRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	out, err := run(t, "--name", " J", "--endpoint", srv.URL)
	require.ErrorIs(t, err, errNotAccepted)

	assert.False(t, called)
	assert.Contains(t, out, "name: Name must be at least 2 characters")
}

func TestSubmit_RejectedByServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"validation failed","fields":{"company":"Company name must be at least 2 characters"}}`))
	}))
	defer srv.Close()

	out, err := run(t, append(validArgs, "--endpoint", srv.URL, "--variant", "cta")...)
	require.ErrorIs(t, err, errNotAccepted)

	assert.Contains(t, out, "Submission failed")
	assert.Contains(t, out, "validation failed")
	assert.Contains(t, out, "company: Company name must be at least 2 characters")
}

func TestSubmit_UnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	out, err := run(t, append(validArgs, "--endpoint", endpoint, "--variant", "cta")...)
	require.ErrorIs(t, err, errNotAccepted)

	assert.Contains(t, out, "Submission failed")
	assert.Contains(t, out, "We could not reach the server. Check your connection and try again.")
}
