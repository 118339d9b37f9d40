package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ValidateDocument checks the whole onboarding document and returns every
// problem found. A non-empty result rejects the import outright: a workspace
// is never partially constructed from a bad document.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if len(doc.Projects) == 0 {
		errs = append(errs, fmt.Errorf("document has no projects"))
	}

	for pi, p := range doc.Projects {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d].name is required", pi))
		}
		if len(p.Workstreams) == 0 {
			errs = append(errs, fmt.Errorf("projects[%d] %q has no workstreams", pi, p.Name))
		}
		for wi, w := range p.Workstreams {
			errs = append(errs, validateWorkstream(pi, wi, &w)...)
		}
	}

	return errs
}

func validateWorkstream(pi, wi int, w *WorkstreamImport) []error {
	var errs []error
	where := fmt.Sprintf("projects[%d].workstreams[%d]", pi, wi)

	if w.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", where))
	}
	if !domain.ValidCadences[w.Cadence] {
		errs = append(errs, fmt.Errorf("%s.cadence: invalid value %q (expected daily, weekly, biweekly, monthly or quarterly)", where, w.Cadence))
	}
	if w.MilestoneDate != "" {
		if _, err := time.Parse(domain.DateLayout, w.MilestoneDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.milestone_date: invalid date %q (expected YYYY-MM-DD)", where, w.MilestoneDate))
		}
		if w.Milestone == "" {
			errs = append(errs, fmt.Errorf("%s.milestone_date is set but milestone has no title", where))
		}
	}
	for ti, task := range w.Tasks {
		if task.Name == "" {
			errs = append(errs, fmt.Errorf("%s.tasks[%d].name is required", where, ti))
		}
	}

	return errs
}
