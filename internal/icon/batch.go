package icon

import (
	"fmt"
	"os"
)

// Summary reports the outcome of a batch generation run.
type Summary struct {
	Results []Result
	Failed  int
}

// Succeeded returns the number of icons written without error.
func (s Summary) Succeeded() int {
	return len(s.Results) - s.Failed
}

// FirstErr returns the first write error in the batch, or nil if every
// icon was written.
func (s Summary) FirstErr() error {
	for _, res := range s.Results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// Generate renders and writes every spec in order, creating the output
// directory first. A failed icon does not stop the batch: each spec
// gets a Result and failures are tallied in the summary. Only an
// unusable output directory aborts the run.
func (r *Renderer) Generate(specs []Spec) (Summary, error) {
	if err := os.MkdirAll(r.output, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", r.output, err)
	}

	var sum Summary
	for _, spec := range specs {
		res := r.Write(spec)
		if res.Err != nil {
			sum.Failed++
		}
		sum.Results = append(sum.Results, res)
	}
	return sum, nil
}
