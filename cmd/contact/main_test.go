package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactrelay/internal/contactform"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestContactCmd_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["name"])
		_, _ = w.Write([]byte(`{"success":true,"message":"Message received! We'll get back to you soon."}`))
	}))
	defer srv.Close()

	stdout, _, err := execute(t,
		"--endpoint", srv.URL,
		"--name", " Ada ",
		"--email", "ada@example.com",
		"--subject", "Hello",
		"-m", "Just saying hello to you.",
	)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Message sent!")
	assert.Equal(t, int32(1), calls.Load())
}

func TestContactCmd_InvalidFieldsDoNotSend(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, stderr, err := execute(t,
		"--endpoint", srv.URL,
		"--name", "Ada",
		"--email", "nope",
		"--subject", "",
		"-m", "short",
	)

	assert.ErrorIs(t, err, contactform.ErrInvalid)
	assert.Contains(t, stderr, "email: Please enter a valid email")
	assert.Contains(t, stderr, "subject: Subject is required")
	assert.Contains(t, stderr, "message: Message must be at least 10 characters")
	assert.Zero(t, calls.Load())
}

func TestContactCmd_RelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to send message. Please try again later."}`))
	}))
	defer srv.Close()

	_, stderr, err := execute(t,
		"--endpoint", srv.URL,
		"--name", "Ada",
		"--email", "ada@example.com",
		"--subject", "Hello",
		"-m", "Just saying hello to you.",
	)

	require.Error(t, err)
	assert.Contains(t, stderr, "Failed to send message")
	assert.Contains(t, stderr, "Please try again or email me directly.")
}
