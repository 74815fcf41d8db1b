// Package verify compares game state snapshots against expected values and
// renders the outcome as PASSED/FAILED lines.
package verify

import (
	"fmt"
	"io"

	"github.com/jason-s-yu/dominion/internal/game"
)

// Result is the outcome of one named check.
type Result struct {
	Name     string
	Expected int
	Actual   int
	Passed   bool
	line     string
}

// Line renders the result the way the report prints it.
func (r Result) Line() string {
	if r.line != "" {
		return r.line
	}
	if r.Passed {
		return fmt.Sprintf("PASSED: %s", r.Name)
	}
	return fmt.Sprintf("FAILED: %s - expected %d, got %d", r.Name, r.Expected, r.Actual)
}

// Report collects check results for one suite.
type Report struct {
	Title   string
	results []Result
}

// NewReport starts an empty report with a heading line.
func NewReport(title string) *Report {
	return &Report{Title: title}
}

// Equal records whether actual matches expected and returns the outcome.
func (r *Report) Equal(name string, expected, actual int) bool {
	res := Result{Name: name, Expected: expected, Actual: actual, Passed: expected == actual}
	r.results = append(r.results, res)
	return res.Passed
}

// SupplyUnchanged checks every supply pile of post against pre. It stops at
// the first pile that differs.
func (r *Report) SupplyUnchanged(pre, post *game.GameState) bool {
	res := Result{Name: "Supply counts", Passed: true}
	for c := 0; c < game.NumCardTypes; c++ {
		if pre.Supply[c] != post.Supply[c] {
			res.Passed = false
			res.Expected = pre.Supply[c]
			res.Actual = post.Supply[c]
			res.line = fmt.Sprintf("Supply counts: FAILED: Supply counts don't match at card %d (%s)", c, game.CardType(c))
			break
		}
	}
	if res.Passed {
		res.line = "Supply counts: PASSED"
	}
	r.results = append(r.results, res)
	return res.Passed
}

// Results returns the recorded checks in order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool {
	for _, res := range r.results {
		if !res.Passed {
			return true
		}
	}
	return false
}

// Counts returns the number of passed and failed checks.
func (r *Report) Counts() (passed, failed int) {
	for _, res := range r.results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// WriteTo prints the title and one line per check.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if r.Title != "" {
		n, err := fmt.Fprintln(w, r.Title)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, res := range r.results {
		n, err := fmt.Fprintln(w, res.Line())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
