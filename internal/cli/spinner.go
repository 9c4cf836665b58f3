package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate matches the teacher's progress-indicator cadence.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner so callers needing progress
// feedback on a slow op don't depend on the briandowns/spinner package
// directly, keeping presentation swappable in tests.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// NewSpinner is a package variable so tests can substitute a fake.
var NewSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}
