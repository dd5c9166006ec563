package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Steps is the fixed list of build steps.
var Steps = []Item{
	{ID: "design", Label: "Design System Created"},
	{ID: "landing", Label: "Landing Page Built"},
	{ID: "dashboard", Label: "Dashboard Implemented"},
	{ID: "pages", Label: "Core Pages Built"},
	{ID: "analyzer", Label: "JD Analyzer Engine"},
	{ID: "persistence", Label: "Data Persistence"},
	{ID: "interactivity", Label: "Skill Toggles & Scoring"},
	{ID: "validation", Label: "Input Validation & Hardening"},
}

// Links are the proof-of-work URLs of the final submission.
type Links struct {
	Lovable    string `json:"lovable" validate:"omitempty,http_url"`
	GitHub     string `json:"github" validate:"omitempty,http_url"`
	Deployment string `json:"deployment" validate:"omitempty,http_url"`
}

// LinkFields names the settable link fields.
var LinkFields = []string{"lovable", "github", "deployment"}

var validate = validator.New()

// Complete reports whether every link is set.
func (l Links) Complete() bool {
	return l.Lovable != "" && l.GitHub != "" && l.Deployment != ""
}

// Validate checks that every set link is an http or https URL.
func (l Links) Validate() error {
	if err := validate.Struct(l); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s must start with http:// or https://", ErrInvalidLink, strings.ToLower(fieldErrs[0].Field()))
		}
		return fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	return nil
}

// Links returns the stored proof links.
func (t *Tracker) Links(ctx context.Context) (Links, error) {
	links, err := readJSON[Links](ctx, t.kv, ProofKey)
	if err != nil {
		return Links{}, err
	}
	return links, nil
}

// SetLink validates and stores one proof link. An empty value clears it.
func (t *Tracker) SetLink(ctx context.Context, field, value string) (Links, error) {
	links, err := t.Links(ctx)
	if err != nil {
		return Links{}, err
	}

	value = strings.TrimSpace(value)
	switch strings.ToLower(field) {
	case "lovable":
		links.Lovable = value
	case "github":
		links.GitHub = value
	case "deployment":
		links.Deployment = value
	default:
		return Links{}, fmt.Errorf("%w: %q", ErrUnknownItem, field)
	}

	if err := links.Validate(); err != nil {
		return Links{}, err
	}
	return links, t.writeJSON(ctx, ProofKey, links)
}

// StepStatus returns the completion flag of every build step.
func (t *Tracker) StepStatus(ctx context.Context) (map[string]bool, error) {
	return t.readFlags(ctx, StepsKey, Steps)
}

// SetStep marks a build step as done or not.
func (t *Tracker) SetStep(ctx context.Context, id string, done bool) error {
	return t.setFlag(ctx, StepsKey, Steps, id, done)
}
