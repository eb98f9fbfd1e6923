package validation

import (
	"time"

	"github.com/google/uuid"

	"github.com/sherzoddehqon/pilot-water/pkg/logging"
)

// Report contains the consolidated outcome of one validation run.
type Report struct {
	ID        uuid.UUID
	CheckedAt time.Time
	Errors    []Finding
	Warnings  []Finding
}

// Valid reports whether the run produced no blocking errors.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// FindingsByType returns all findings of the given type, errors first.
func (r *Report) FindingsByType(findingType FindingType) []Finding {
	var out []Finding
	for _, f := range r.Errors {
		if f.Type == findingType {
			out = append(out, f)
		}
	}
	for _, f := range r.Warnings {
		if f.Type == findingType {
			out = append(out, f)
		}
	}
	return out
}

// Validator runs a battery of checks over a network and its derived
// structures. Every check runs unconditionally; nothing short-circuits.
type Validator struct {
	checks []Check
	logger logging.Logger
}

// NewValidator creates a validator with the default battery. The topology
// check runs first because the remaining rules are unreliable on a graph
// with structural defects.
func NewValidator(config Config, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Validator{
		checks: []Check{
			NewTopologyCheck(),
			NewHierarchyCheck(),
			NewConnectionTypeCheck(),
			NewCardinalityCheck(),
			NewComponentTypeCheck(),
			NewFieldReachabilityCheck(config.UncontrolledSupplySeverity()),
			NewBlockStructureCheck(),
		},
		logger: logger,
	}
}

// NewValidatorWithChecks creates a validator running exactly the given
// checks in order.
func NewValidatorWithChecks(checks []Check, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Validator{checks: checks, logger: logger}
}

// Checks returns the configured checks in execution order.
func (v *Validator) Checks() []Check {
	return v.checks
}

// Validate runs every check and splits the findings into blocking errors
// and advisory warnings.
func (v *Validator) Validate(input *Input) *Report {
	timer := logging.StartTimer(v.logger, "validation run", logging.Operation("validate"))
	defer timer.End()

	report := &Report{
		ID:        uuid.New(),
		CheckedAt: time.Now(),
	}

	for _, check := range v.checks {
		findings := check.Validate(input)
		for _, f := range findings {
			if f.Severity == Error {
				report.Errors = append(report.Errors, f)
			} else {
				report.Warnings = append(report.Warnings, f)
			}
		}
		v.logger.Debug("check completed",
			logging.String("check", check.Name()),
			logging.Count(len(findings)))
	}

	v.logger.Info("validation completed",
		logging.String("report_id", report.ID.String()),
		logging.Int("errors", len(report.Errors)),
		logging.Int("warnings", len(report.Warnings)))
	return report
}
