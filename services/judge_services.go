package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"oasis/config"
	"oasis/metrics"
	"oasis/models"
	"oasis/utils"
)

// JudgeResult is the outcome of scoring an algorithmic submission
type JudgeResult struct {
	Status        models.SubmissionStatus
	Points        int
	Output        *string
	ErrorMessage  *string
	ExecutionTime *int // milliseconds
	MemoryUsed    *int // KB
}

// Judge scores algorithmic code submissions. The default implementation
// accepts everything at half points; a test-case-driven judge can be
// plugged in through SetJudge.
type Judge interface {
	Evaluate(ctx context.Context, submission *models.Submission, challenge *models.Challenge) (JudgeResult, error)
}

var activeJudge Judge = AcceptAllJudge{}

// SetJudge replaces the judge used for scored algorithmic evaluation
func SetJudge(j Judge) {
	activeJudge = j
}

// AcceptAllJudge accepts every algorithmic submission with half the
// challenge points. This mirrors the platform's launch behavior where
// real test-case judging is not wired up yet.
type AcceptAllJudge struct{}

func (AcceptAllJudge) Evaluate(ctx context.Context, submission *models.Submission, challenge *models.Challenge) (JudgeResult, error) {
	points := 100
	if challenge != nil {
		points = challenge.Points
	}
	return JudgeResult{
		Status: models.StatusAccepted,
		Points: points / 2,
	}, nil
}

// ExecutionResult is the outcome of an interactive code run
type ExecutionResult struct {
	Output        *string `json:"output"`
	ErrorMessage  *string `json:"error_message"`
	ExecutionTime *int    `json:"execution_time"` // milliseconds
	MemoryUsed    *int    `json:"memory_used"`    // KB
	Status        string  `json:"status"`
}

// Judge0Client performs interactive code runs against a Judge0 deployment
type Judge0Client struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewJudge0Client builds a client from the configured endpoint and token
func NewJudge0Client() *Judge0Client {
	return &Judge0Client{
		endpoint: config.Judge0Endpoint,
		token:    config.Judge0Token,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type judge0Request struct {
	SourceCode   string `json:"source_code"`
	LanguageID   int    `json:"language_id"`
	Stdin        string `json:"stdin"`
	CPUTimeLimit int    `json:"cpu_time_limit"`
	MemoryLimit  int    `json:"memory_limit"`
}

type judge0Response struct {
	Stdout        *string         `json:"stdout"`
	Stderr        *string         `json:"stderr"`
	CompileOutput *string         `json:"compile_output"`
	Time          json.RawMessage `json:"time"`
	Memory        *int            `json:"memory"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

// Execute runs code with the given stdin and waits for the verdict
func (j *Judge0Client) Execute(ctx context.Context, code, language, stdin string) (ExecutionResult, error) {
	start := time.Now()

	body, err := json.Marshal(judge0Request{
		SourceCode:   code,
		LanguageID:   utils.LanguageID(language),
		Stdin:        stdin,
		CPUTimeLimit: 2,
		MemoryLimit:  128000,
	})
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to encode judge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.endpoint+"/submissions?wait=true", bytes.NewReader(body))
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("failed to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", j.token)

	resp, err := j.client.Do(req)
	if err != nil {
		metrics.JudgeRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return ExecutionResult{}, fmt.Errorf("judge service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result judge0Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.JudgeRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return ExecutionResult{}, fmt.Errorf("failed to decode judge response: %w", err)
	}
	metrics.JudgeRequestDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	errorMessage := result.Stderr
	if errorMessage == nil {
		errorMessage = result.CompileOutput
	}

	status := result.Status.Description
	if status == "" {
		status = "Unknown"
	}

	return ExecutionResult{
		Output:        result.Stdout,
		ErrorMessage:  errorMessage,
		ExecutionTime: parseTimeMillis(result.Time),
		MemoryUsed:    result.Memory,
		Status:        status,
	}, nil
}

// parseTimeMillis converts Judge0's execution time, which arrives either
// as a bare number or a quoted decimal string of seconds, to milliseconds
func parseTimeMillis(raw json.RawMessage) *int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	millis := int(math.Round(seconds * 1000))
	return &millis
}
