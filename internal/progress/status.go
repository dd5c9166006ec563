package progress

import (
	"context"
	"fmt"
	"strings"
)

// ShipStatus summarizes whether the project is ready to ship.
type ShipStatus struct {
	Links       Links
	TestsPassed int
	TestsTotal  int
	StepsDone   int
	StepsTotal  int
	LinksValid  bool
}

// Shipped reports whether every test passes, every step is done and every
// link is set and valid.
func (s ShipStatus) Shipped() bool {
	return s.TestsPassed == s.TestsTotal && s.StepsDone == s.StepsTotal && s.LinksValid
}

// Status gathers the current ship status.
func (t *Tracker) Status(ctx context.Context) (ShipStatus, error) {
	tests, err := t.TestStatus(ctx)
	if err != nil {
		return ShipStatus{}, err
	}
	steps, err := t.StepStatus(ctx)
	if err != nil {
		return ShipStatus{}, err
	}
	links, err := t.Links(ctx)
	if err != nil {
		return ShipStatus{}, err
	}

	return ShipStatus{
		TestsPassed: countTrue(tests),
		TestsTotal:  len(Tests),
		StepsDone:   countTrue(steps),
		StepsTotal:  len(Steps),
		Links:       links,
		LinksValid:  links.Complete() && links.Validate() == nil,
	}, nil
}

// SubmissionText renders the final submission summary. It fails unless all
// three links are set and valid.
func SubmissionText(links Links) (string, error) {
	if !links.Complete() {
		return "", fmt.Errorf("%w: all of %s are required", ErrInvalidLink, strings.Join(LinkFields, ", "))
	}
	if err := links.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("------------------------------------------\n")
	b.WriteString("Placement Readiness Platform - Final Submission\n\n")
	fmt.Fprintf(&b, "Lovable Project: %s\n", links.Lovable)
	fmt.Fprintf(&b, "GitHub Repository: %s\n", links.GitHub)
	fmt.Fprintf(&b, "Live Deployment: %s\n\n", links.Deployment)
	b.WriteString("Core Capabilities:\n")
	b.WriteString("- JD skill extraction (deterministic)\n")
	b.WriteString("- Round mapping engine\n")
	b.WriteString("- 7-day prep plan\n")
	b.WriteString("- Interactive readiness scoring\n")
	b.WriteString("- History persistence\n")
	b.WriteString("------------------------------------------\n")
	return b.String(), nil
}
