package domain

// Outcome classifies what happened to a single package during a run.
type Outcome string

// Possible outcomes.
const (
	// OutcomeVerified means the package is locatable after the fetch.
	OutcomeVerified Outcome = "verified"

	// OutcomeUnresolvable means the fetch returned without error but the
	// resource still cannot be located.
	OutcomeUnresolvable Outcome = "unresolvable"

	// OutcomeFetchFailed means the fetch mechanism returned an error.
	OutcomeFetchFailed Outcome = "fetch_failed"
)

// String returns the string representation.
func (o Outcome) String() string {
	return string(o)
}

// PackageResult records the outcome for one package.
type PackageResult struct {
	// Package is the package that was attempted.
	Package Package

	// Outcome is the classification of the attempt.
	Outcome Outcome

	// Err is the fetch or lookup error. Nil when verified.
	Err error

	// Location is where the resource was found. Empty unless verified.
	Location string
}

// Verified returns true if the package was located after fetching.
func (r PackageResult) Verified() bool {
	return r.Outcome == OutcomeVerified
}

// Report accumulates the results of a provisioning run.
type Report struct {
	// BaseDir is the resolved data directory.
	BaseDir string

	// Results holds one entry per attempted package, in attempt order.
	Results []PackageResult
}

// Add appends a result.
func (r *Report) Add(result PackageResult) {
	r.Results = append(r.Results, result)
}

// Success returns true if every attempted package was verified.
// An empty report is not a success.
func (r *Report) Success() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Verified() {
			return false
		}
	}
	return true
}

// Failed returns the results that were not verified.
func (r *Report) Failed() []PackageResult {
	var failed []PackageResult
	for _, res := range r.Results {
		if !res.Verified() {
			failed = append(failed, res)
		}
	}
	return failed
}
