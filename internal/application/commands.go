package application

import "fmt"

// ProgressFunc is told how many of total units of work have finished. It may
// be called from several goroutines.
type ProgressFunc func(done, total int)

func (f ProgressFunc) report(done, total int) {
	if f != nil {
		f(done, total)
	}
}

type BriefingCommand struct {
	Tenant      string
	Concurrency int
	NoCache     bool
	// Progress counts answered questions.
	Progress ProgressFunc
}

// PrepWindowKind selects how upcoming meetings are looked up.
type PrepWindowKind string

const (
	PrepWindowTimeframe PrepWindowKind = "timeframe"
	PrepWindowNextHours PrepWindowKind = "next"
)

type PrepCommand struct {
	Tenant    string
	Window    PrepWindowKind
	Timeframe string
	Hours     int
	NoCache   bool
	// Progress counts prepared meetings once the meeting list is known.
	Progress ProgressFunc
}

const DefaultPrepTimeframe = "today"

func (c PrepCommand) Validate() error {
	switch c.Window {
	case PrepWindowTimeframe, "":
		return nil
	case PrepWindowNextHours:
		if c.Hours <= 0 {
			return fmt.Errorf("hours must be positive, got %d", c.Hours)
		}
		return nil
	default:
		return fmt.Errorf("unsupported prep window %q", c.Window)
	}
}

func (c PrepCommand) askOptions() []AskOption {
	return askOptionsFor(c.Tenant, c.NoCache)
}

func (c BriefingCommand) askOptions() []AskOption {
	return askOptionsFor(c.Tenant, c.NoCache)
}

func askOptionsFor(tenant string, noCache bool) []AskOption {
	opts := []AskOption{WithTenant(tenant)}
	if noCache {
		opts = append(opts, WithoutCache())
	}

	return opts
}
