package workiq

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
)

const (
	DefaultBinary = "workiq"

	// waitDelay bounds how long output pipes are drained after the process is
	// killed on timeout.
	waitDelay = 2 * time.Second
)

type runResult struct {
	stdout    string
	stderr    string
	truncated bool
	exitCode  int
}

type runFunc func(ctx context.Context, binary string, maxOutput int64, args ...string) (runResult, error)

// Client invokes the Work IQ CLI. Arguments are passed as a vector, never
// through a shell, so quotes in questions reach the tool verbatim. How the tool
// itself interprets untrusted question text is outside this layer.
type Client struct {
	binary    string
	maxOutput int64
	run       runFunc
}

var (
	_ ports.QueryRunner = (*Client)(nil)
	_ ports.ToolProbe   = (*Client)(nil)
)

func NewClient(binary string) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}

	return &Client{
		binary:    binary,
		maxOutput: domain.MaxOutputBytes,
		run:       runCommand,
	}
}

func (c *Client) Ask(ctx context.Context, question, tenant string) (string, error) {
	return c.exec(ctx, AskArgs(question, tenant))
}

func (c *Client) Version(ctx context.Context) (string, error) {
	return c.exec(ctx, []string{"version"})
}

// AskArgs builds the argument vector for a question.
func AskArgs(question, tenant string) []string {
	args := []string{"ask", "--question", question}
	if tenant != "" {
		args = append(args, "--tenant", tenant)
	}

	return args
}

func (c *Client) exec(ctx context.Context, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", mapContextError(err)
	}

	res, err := c.run(ctx, c.binary, c.maxOutput, args...)
	if err != nil {
		if errors.Is(err, domain.ErrToolMissing) {
			return "", err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", mapContextError(ctxErr)
		}
		return "", &domain.ToolError{Args: args, ExitCode: res.exitCode, Stderr: res.stderr, Err: err}
	}

	if res.truncated {
		return "", fmt.Errorf("work iq %s: %w (%d bytes)", args[0], domain.ErrOutputTooLarge, c.maxOutput)
	}

	out := strings.TrimSpace(res.stdout)
	if out == "" && res.stderr != "" {
		return "", &domain.ToolError{Args: args, Stderr: res.stderr, Err: errors.New("no output")}
	}

	return out, nil
}

func mapContextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}

	return err
}

func runCommand(ctx context.Context, binary string, maxOutput int64, args ...string) (runResult, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return runResult{}, fmt.Errorf("%w: %s", domain.ErrToolMissing, binary)
		}
		return runResult{}, fmt.Errorf("locate %s: %w", binary, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = waitDelay

	stdout := &cappedBuffer{limit: maxOutput}
	stderr := &cappedBuffer{limit: maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	res := runResult{
		stdout:    stdout.String(),
		stderr:    strings.TrimSpace(stderr.String()),
		truncated: stdout.truncated,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.exitCode = exitErr.ExitCode()
	}

	return res, err
}
