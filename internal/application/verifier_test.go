package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func statuses(results []domain.CheckResult) []domain.CheckStatus {
	out := make([]domain.CheckStatus, 0, len(results))
	for _, r := range results {
		out = append(out, r.Status)
	}
	return out
}

func TestVerifierAllChecksPass(t *testing.T) {
	probe := mocks.NewMockToolProbe(t)
	probe.EXPECT().Version(mockAnyContext()).Return("workiq 1.4.0\nbuild abc", nil)
	probe.EXPECT().Ask(mockAnyContext(), "test", "").Return("Hello", nil)
	probe.EXPECT().Ask(mockAnyContext(), "test query", "").Return("Here is what I found", nil)

	verifier := NewVerifier(probe, VerifierConfig{
		GoVersion: "go1.25.3",
		EnvFile:   writeEnvFile(t, "WORKIQ_TENANT_ID=3f1c9a2e-contoso\n"),
	}, nil)

	results := verifier.Verify(context.Background())
	assert.Equal(t, []domain.CheckStatus{
		domain.CheckPass, domain.CheckPass, domain.CheckPass, domain.CheckPass,
		domain.CheckPass, domain.CheckPass, domain.CheckPass,
	}, statuses(results))
	assert.Equal(t, "Go: go1.25.3 (OK)", results[0].Message)
	assert.Equal(t, "Work IQ CLI: workiq 1.4.0 (OK)", results[1].Message)
	assert.Equal(t, "  WORKIQ_TENANT_ID configured", results[4].Message)
	assert.Equal(t, "Authentication: Valid", results[5].Message)

	summary := domain.Summarize(results)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 0, summary.ExitCode())
}

func TestVerifierMissingToolFailsWithInstallHint(t *testing.T) {
	probe := mocks.NewMockToolProbe(t)
	probe.EXPECT().Version(mockAnyContext()).Return("", fmt.Errorf("%w: workiq", domain.ErrToolMissing))

	verifier := NewVerifier(probe, VerifierConfig{
		GoVersion: "go1.22.0",
		EnvFile:   filepath.Join(t.TempDir(), ".env"),
	}, nil)

	results := verifier.Verify(context.Background())
	assert.Equal(t, []domain.CheckStatus{
		domain.CheckPass, domain.CheckFail, domain.CheckWarn, domain.CheckWarn, domain.CheckWarn, domain.CheckPass,
	}, statuses(results))
	assert.Equal(t, "Install with: npm install -g @microsoft/workiq", results[1].Hint)
	assert.Equal(t, "Copy .env.example to .env and configure", results[3].Hint)

	summary := domain.Summarize(results)
	assert.Equal(t, domain.CheckSummary{Passed: 2, Failed: 1, Warned: 3}, summary)
	assert.Equal(t, 1, summary.ExitCode())
}

func TestVerifierEULANotAccepted(t *testing.T) {
	probe := mocks.NewMockToolProbe(t)
	probe.EXPECT().Version(mockAnyContext()).Return("1.4.0", nil)
	eulaErr := &domain.ToolError{Args: []string{"ask"}, ExitCode: 1, Stderr: "You must accept the EULA", Err: errors.New("exit status 1")}
	probe.EXPECT().Ask(mockAnyContext(), "test", "").Return("", eulaErr)
	probe.EXPECT().Ask(mockAnyContext(), "test query", "").Return("", eulaErr)

	verifier := NewVerifier(probe, VerifierConfig{
		GoVersion: "go1.25.0",
		EnvFile:   writeEnvFile(t, "WORKIQ_TENANT_ID=abc\n"),
	}, nil)

	results := verifier.Verify(context.Background())
	assert.Equal(t, domain.CheckFail, results[2].Status)
	assert.Equal(t, "Run: workiq accept-eula", results[2].Hint)
	assert.Equal(t, "Authentication: Likely valid", results[5].Message)
}

func TestVerifierEnvFileFlagsPlaceholders(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		status  domain.CheckStatus
	}{
		{name: "placeholder", content: "WORKIQ_TENANT_ID=your-tenant-id\n", status: domain.CheckWarn},
		{name: "empty", content: "WORKIQ_TENANT_ID=\n", status: domain.CheckWarn},
		{name: "missing", content: "OTHER=1\n", status: domain.CheckWarn},
		{name: "quoted", content: "WORKIQ_TENANT_ID=\"contoso\"\n", status: domain.CheckPass},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := NewVerifier(nil, VerifierConfig{EnvFile: writeEnvFile(t, tc.content)}, nil)

			results := verifier.checkEnvFile()
			require.Len(t, results, 2)
			assert.Equal(t, domain.CheckPass, results[0].Status)
			assert.Equal(t, tc.status, results[1].Status)
		})
	}
}

func TestVerifierAuthenticationHeuristics(t *testing.T) {
	testCases := []struct {
		name    string
		out     string
		err     error
		status  domain.CheckStatus
		message string
	}{
		{name: "login prompt", out: "Please login to continue", status: domain.CheckWarn, message: "Authentication: Not authenticated"},
		{name: "auth error", err: &domain.ToolError{Stderr: "Authentication required", Err: errors.New("exit status 1")}, status: domain.CheckWarn, message: "Authentication: Not authenticated"},
		{name: "timeout", err: fmt.Errorf("%w: deadline", domain.ErrTimeout), status: domain.CheckWarn, message: "Authentication: Could not verify (timeout)"},
		{name: "permission", err: &domain.ToolError{Stderr: "permission denied", Err: errors.New("exit status 1")}, status: domain.CheckFail, message: "Authentication: Permission denied"},
		{name: "other error", err: errors.New("boom"), status: domain.CheckPass, message: "Authentication: Likely valid"},
		{name: "answer", out: "You have 2 meetings", status: domain.CheckPass, message: "Authentication: Valid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			probe := mocks.NewMockToolProbe(t)
			probe.EXPECT().Ask(mockAnyContext(), "test query", "").Return(tc.out, tc.err)

			verifier := NewVerifier(probe, VerifierConfig{}, nil)
			result := verifier.checkAuthentication(context.Background(), true)
			assert.Equal(t, tc.status, result.Status)
			assert.Equal(t, tc.message, result.Message)
		})
	}
}

func TestVerifierGoVersion(t *testing.T) {
	testCases := []struct {
		version string
		status  domain.CheckStatus
	}{
		{version: "go1.21", status: domain.CheckPass},
		{version: "go1.25.3", status: domain.CheckPass},
		{version: "go1.20.14", status: domain.CheckFail},
		{version: "devel go1.26-abcdef Mon Jan 1", status: domain.CheckPass},
		{version: "unknown", status: domain.CheckFail},
	}

	for _, tc := range testCases {
		t.Run(tc.version, func(t *testing.T) {
			verifier := NewVerifier(nil, VerifierConfig{GoVersion: tc.version}, nil)
			assert.Equal(t, tc.status, verifier.checkGoVersion().Status)
		})
	}
}
