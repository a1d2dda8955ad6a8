package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oasis/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptAllJudgeHalvesPoints(t *testing.T) {
	judge := AcceptAllJudge{}

	result, err := judge.Evaluate(context.Background(), &models.Submission{}, &models.Challenge{Points: 100})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, result.Status)
	assert.Equal(t, 50, result.Points)

	result, err = judge.Evaluate(context.Background(), &models.Submission{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, result.Points)
}

func TestJudge0ClientExecute(t *testing.T) {
	var captured judge0Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"stdout": "42\n",
			"stderr": null,
			"time": "0.023",
			"memory": 3456,
			"status": {"id": 3, "description": "Accepted"}
		}`))
	}))
	defer server.Close()

	client := &Judge0Client{endpoint: server.URL, token: "test-token", client: server.Client()}
	result, err := client.Execute(context.Background(), "print(42)", "python", "")
	require.NoError(t, err)

	assert.Equal(t, 71, captured.LanguageID)
	assert.Equal(t, "print(42)", captured.SourceCode)

	assert.Equal(t, "Accepted", result.Status)
	require.NotNil(t, result.Output)
	assert.Equal(t, "42\n", *result.Output)
	require.NotNil(t, result.ExecutionTime)
	assert.Equal(t, 23, *result.ExecutionTime)
	require.NotNil(t, result.MemoryUsed)
	assert.Equal(t, 3456, *result.MemoryUsed)
	assert.Nil(t, result.ErrorMessage)
}

func TestJudge0ClientCompileError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"stdout": null,
			"stderr": null,
			"compile_output": "syntax error",
			"time": null,
			"memory": null,
			"status": {"id": 6, "description": "Compilation Error"}
		}`))
	}))
	defer server.Close()

	client := &Judge0Client{endpoint: server.URL, token: "", client: server.Client()}
	result, err := client.Execute(context.Background(), "broken(", "python", "")
	require.NoError(t, err)

	assert.Equal(t, "Compilation Error", result.Status)
	require.NotNil(t, result.ErrorMessage)
	assert.Equal(t, "syntax error", *result.ErrorMessage)
	assert.Nil(t, result.ExecutionTime)
}

func TestJudge0ClientUnreachable(t *testing.T) {
	client := &Judge0Client{endpoint: "http://127.0.0.1:1", token: "", client: http.DefaultClient}
	_, err := client.Execute(context.Background(), "print(42)", "python", "")
	assert.Error(t, err)
}

func TestParseTimeMillis(t *testing.T) {
	cases := map[string]*int{
		`"0.023"`: intPtr(23),
		`1.5`:     intPtr(1500),
		`null`:    nil,
		`""`:      nil,
		`"abc"`:   nil,
	}
	for raw, want := range cases {
		got := parseTimeMillis(json.RawMessage(raw))
		if want == nil {
			assert.Nil(t, got, raw)
		} else {
			require.NotNil(t, got, raw)
			assert.Equal(t, *want, *got, raw)
		}
	}
}

func intPtr(v int) *int { return &v }
