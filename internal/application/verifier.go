package application

import (
	"context"
	"errors"
	"fmt"
	"go/version"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/spf13/viper"
)

const (
	MinGoVersion       = "go1.21"
	DefaultEnvFile     = ".env"
	DefaultAuthTimeout = 10 * time.Second

	eulaProbeQuestion = "test"
	authProbeQuestion = "test query"
)

var DefaultRequiredEnv = []string{"WORKIQ_TENANT_ID"}

type VerifierConfig struct {
	// GoVersion defaults to runtime.Version().
	GoVersion   string
	EnvFile     string
	RequiredEnv []string
	AuthTimeout time.Duration
}

// Verifier runs the setup checklist. Every check always runs and none of them
// returns an error; problems become failing or warning results.
type Verifier struct {
	probe       ports.ToolProbe
	goVersion   string
	envFile     string
	requiredEnv []string
	authTimeout time.Duration
	logger      *slog.Logger
}

func NewVerifier(probe ports.ToolProbe, cfg VerifierConfig, logger *slog.Logger) *Verifier {
	if cfg.GoVersion == "" {
		cfg.GoVersion = runtime.Version()
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}
	if cfg.RequiredEnv == nil {
		cfg.RequiredEnv = DefaultRequiredEnv
	}
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = DefaultAuthTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Verifier{
		probe:       probe,
		goVersion:   cfg.GoVersion,
		envFile:     cfg.EnvFile,
		requiredEnv: cfg.RequiredEnv,
		authTimeout: cfg.AuthTimeout,
		logger:      logger,
	}
}

func (v *Verifier) Verify(ctx context.Context) []domain.CheckResult {
	var results []domain.CheckResult
	results = append(results, v.checkGoVersion())

	toolResult, installed := v.checkTool(ctx)
	results = append(results, toolResult)
	results = append(results, v.checkEULA(ctx, installed))
	results = append(results, v.checkEnvFile()...)
	results = append(results, v.checkAuthentication(ctx, installed))
	results = append(results, pass("Permissions: Assumed valid (run queries to verify)"))

	summary := domain.Summarize(results)
	v.logger.Debug("verification finished", "passed", summary.Passed, "failed", summary.Failed, "warnings", summary.Warned)
	return results
}

func (v *Verifier) checkGoVersion() domain.CheckResult {
	current := v.goVersion
	// Development toolchains report "devel go1.x-..."; take the language version.
	if fields := strings.Fields(current); len(fields) > 1 && fields[0] == "devel" {
		current = strings.SplitN(fields[1], "-", 2)[0]
	}

	if !version.IsValid(current) {
		return fail(fmt.Sprintf("Go: %s (unrecognised version)", v.goVersion), "")
	}
	if version.Compare(current, MinGoVersion) < 0 {
		return fail(fmt.Sprintf("Go: %s (Need >= %s)", v.goVersion, MinGoVersion), "")
	}

	return pass(fmt.Sprintf("Go: %s (OK)", v.goVersion))
}

func (v *Verifier) checkTool(ctx context.Context) (domain.CheckResult, bool) {
	out, err := v.probe.Version(ctx)
	if err != nil {
		v.logger.Debug("version probe failed", "error", err)
		return fail("Work IQ CLI: Not installed", "Install with: npm install -g @microsoft/workiq"), false
	}

	firstLine, _, _ := strings.Cut(out, "\n")
	return pass(fmt.Sprintf("Work IQ CLI: %s (OK)", strings.TrimSpace(firstLine))), true
}

func (v *Verifier) checkEULA(ctx context.Context, installed bool) domain.CheckResult {
	if !installed {
		return warn("EULA: Could not verify (Work IQ CLI not installed)", "")
	}

	out, err := v.probe.Ask(ctx, eulaProbeQuestion, "")
	if strings.Contains(probeText(out, err), "EULA") {
		return fail("EULA: Not accepted", "Run: workiq accept-eula")
	}

	return pass("EULA: Accepted")
}

func (v *Verifier) checkEnvFile() []domain.CheckResult {
	if _, err := os.Stat(v.envFile); err != nil {
		return []domain.CheckResult{
			warn("Environment: .env file not found", "Copy .env.example to .env and configure"),
		}
	}

	env := viper.New()
	env.SetConfigFile(v.envFile)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return []domain.CheckResult{
			warn("Environment: .env file could not be parsed", err.Error()),
		}
	}

	results := []domain.CheckResult{pass("Environment: .env file exists")}
	for _, key := range v.requiredEnv {
		value := strings.TrimSpace(env.GetString(key))
		if value == "" || strings.HasPrefix(value, "your-") {
			results = append(results, warn(fmt.Sprintf("  %s not configured", key), ""))
			continue
		}
		results = append(results, pass(fmt.Sprintf("  %s configured", key)))
	}

	return results
}

func (v *Verifier) checkAuthentication(ctx context.Context, installed bool) domain.CheckResult {
	if !installed {
		return warn("Authentication: Could not verify (Work IQ CLI not installed)", "")
	}

	probeCtx, cancel := context.WithTimeout(ctx, v.authTimeout)
	defer cancel()

	out, err := v.probe.Ask(probeCtx, authProbeQuestion, "")
	text := probeText(out, err)

	switch {
	case errors.Is(err, domain.ErrTimeout):
		return warn("Authentication: Could not verify (timeout)", "")
	case strings.Contains(text, "Authentication") || strings.Contains(text, "login"):
		return warn("Authentication: Not authenticated",
			`Run a query to authenticate: workiq ask --question "What meetings do I have today?"`)
	case err != nil && strings.Contains(text, "permission"):
		return fail("Authentication: Permission denied", "Check your Microsoft 365 permissions for Work IQ")
	case err != nil:
		return pass("Authentication: Likely valid")
	default:
		return pass("Authentication: Valid")
	}
}

// probeText joins what a probe printed with its error, mirroring a merged
// stdout/stderr read.
func probeText(out string, err error) string {
	if err == nil {
		return out
	}

	return out + "\n" + err.Error()
}

func pass(message string) domain.CheckResult {
	return domain.CheckResult{Status: domain.CheckPass, Message: message}
}

func fail(message, hint string) domain.CheckResult {
	return domain.CheckResult{Status: domain.CheckFail, Message: message, Hint: hint}
}

func warn(message, hint string) domain.CheckResult {
	return domain.CheckResult{Status: domain.CheckWarn, Message: message, Hint: hint}
}
