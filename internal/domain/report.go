package domain

// Check is a single validation check outcome.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// CheckGroup is a category of related checks.
type CheckGroup struct {
	Name   string  `json:"name"`
	Checks []Check `json:"checks"`
}

// Failed returns the checks in the group that did not pass.
func (g CheckGroup) Failed() []Check {
	var failed []Check
	for _, c := range g.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// Report aggregates all validation check groups for one run.
type Report struct {
	Groups []CheckGroup `json:"groups"`
}

// Total returns the number of checks across all groups.
func (r *Report) Total() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Checks)
	}
	return n
}

// Passed returns the number of checks that passed.
func (r *Report) Passed() int {
	n := 0
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			if c.Passed {
				n++
			}
		}
	}
	return n
}

// Failed returns the number of checks that did not pass.
func (r *Report) Failed() int { return r.Total() - r.Passed() }

// SuccessRate returns the percentage of passing checks, 0-100.
func (r *Report) SuccessRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(total) * 100
}

// AllPassed reports whether every check in the report passed.
func (r *Report) AllPassed() bool { return r.Failed() == 0 && r.Total() > 0 }
