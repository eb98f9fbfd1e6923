package validation

import (
	"fmt"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// FieldReachabilityCheck verifies that every field is fed by at least one
// simple path from a source node, and that some feeding path passes
// through a control component (gate or smart meter). An unfed field is an
// error; a field fed only by uncontrolled paths is a softer finding whose
// severity is configurable.
type FieldReachabilityCheck struct {
	uncontrolledSeverity Severity
}

func NewFieldReachabilityCheck(uncontrolledSeverity Severity) *FieldReachabilityCheck {
	return &FieldReachabilityCheck{uncontrolledSeverity: uncontrolledSeverity}
}

func (c *FieldReachabilityCheck) Name() string {
	return "field_reachability"
}

func (c *FieldReachabilityCheck) Validate(input *Input) []Finding {
	var findings []Finding
	net := input.Network
	sources := net.SourceNodes()

	for _, comp := range net.Components() {
		if comp.Type != network.TypeField {
			continue
		}

		reachable := false
		controlled := false
		for _, sourceID := range sources {
			if sourceID == comp.ID {
				continue
			}
			for _, path := range net.AllPaths(sourceID, comp.ID) {
				reachable = true
				if pathHasControl(net, path) {
					controlled = true
					break
				}
			}
			if controlled {
				break
			}
		}

		switch {
		case !reachable:
			findings = append(findings, Finding{
				Type:        UnreachableField,
				Severity:    Error,
				Check:       c.Name(),
				ComponentID: comp.ID,
				Message:     fmt.Sprintf("no water path reaches field %s from any source", comp.ID),
			})
		case !controlled:
			findings = append(findings, Finding{
				Type:        UncontrolledSupply,
				Severity:    c.uncontrolledSeverity,
				Check:       c.Name(),
				ComponentID: comp.ID,
				Message:     fmt.Sprintf("no path to field %s passes through a gate or smart meter", comp.ID),
			})
		}
	}

	return findings
}

func pathHasControl(net *network.Network, path []string) bool {
	for _, id := range path {
		if comp, ok := net.Component(id); ok && comp.Type.IsControl() {
			return true
		}
	}
	return false
}
