package domain

type CheckStatus string

const (
	CheckPass CheckStatus = "pass"
	CheckFail CheckStatus = "fail"
	CheckWarn CheckStatus = "warn"
)

type CheckResult struct {
	Status  CheckStatus
	Message string
	Hint    string
}

type CheckSummary struct {
	Passed int
	Failed int
	Warned int
}

func Summarize(results []CheckResult) CheckSummary {
	var summary CheckSummary
	for _, result := range results {
		switch result.Status {
		case CheckPass:
			summary.Passed++
		case CheckFail:
			summary.Failed++
		case CheckWarn:
			summary.Warned++
		}
	}

	return summary
}

// ExitCode is non-zero when any check failed. Warnings never block.
func (s CheckSummary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}

	return 0
}

func (s CheckSummary) OK() bool {
	return s.ExitCode() == 0
}
