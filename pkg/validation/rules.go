package validation

import (
	"fmt"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// allowedTargets is the fixed connection-type matrix. A source type maps
// to the set of component types it may feed. Fields feed nothing.
var allowedTargets = map[network.ComponentType]map[network.ComponentType]bool{
	network.TypeCanal: {
		network.TypeDistributionPoint: true,
		network.TypeSmartWater:        true,
		network.TypeGate:              true,
	},
	network.TypeDistributionPoint: {
		network.TypeCanal:      true,
		network.TypeSmartWater: true,
		network.TypeGate:       true,
		network.TypeField:      true,
	},
	network.TypeSmartWater: {
		network.TypeField: true,
	},
	network.TypeGate: {
		network.TypeField: true,
	},
	network.TypeField: {},
}

// ConnectionTypeCheck verifies every edge against the connection-type
// matrix.
type ConnectionTypeCheck struct{}

func NewConnectionTypeCheck() *ConnectionTypeCheck {
	return &ConnectionTypeCheck{}
}

func (c *ConnectionTypeCheck) Name() string {
	return "connection_types"
}

func (c *ConnectionTypeCheck) Validate(input *Input) []Finding {
	var findings []Finding

	for _, comp := range input.Network.Components() {
		allowed, known := allowedTargets[comp.Type]
		if !known {
			// Unknown-typed components are caught by the id/type check.
			continue
		}
		for _, targetID := range comp.ConnectionsTo {
			target, ok := input.Network.Component(targetID)
			if !ok {
				continue
			}
			if !allowed[target.Type] {
				findings = append(findings, Finding{
					Type:        ForbiddenConnection,
					Severity:    Error,
					Check:       c.Name(),
					ComponentID: comp.ID,
					Message: fmt.Sprintf("%s (%s) may not feed %s (%s)",
						comp.ID, comp.Type, targetID, target.Type),
					Details: map[string]any{
						"source_type": comp.Type.String(),
						"target":      targetID,
						"target_type": target.Type.String(),
					},
				})
			}
		}
	}

	return findings
}

// CardinalityCheck enforces the per-type degree rules: a smart meter has
// exactly one feed and one outlet, a gate exactly one feed, a field
// exactly one feed and no outlets.
type CardinalityCheck struct{}

func NewCardinalityCheck() *CardinalityCheck {
	return &CardinalityCheck{}
}

func (c *CardinalityCheck) Name() string {
	return "cardinality"
}

func (c *CardinalityCheck) Validate(input *Input) []Finding {
	var findings []Finding

	report := func(comp *network.Component, msg string) {
		findings = append(findings, Finding{
			Type:        CardinalityViolation,
			Severity:    Error,
			Check:       c.Name(),
			ComponentID: comp.ID,
			Message:     msg,
			Details: map[string]any{
				"in":  len(comp.ConnectionsFrom),
				"out": len(comp.ConnectionsTo),
			},
		})
	}

	for _, comp := range input.Network.Components() {
		in, out := len(comp.ConnectionsFrom), len(comp.ConnectionsTo)
		switch comp.Type {
		case network.TypeSmartWater:
			if in != 1 || out != 1 {
				report(comp, fmt.Sprintf("smart meter %s has %d inputs and %d outputs, requires exactly 1 and 1", comp.ID, in, out))
			}
		case network.TypeGate:
			if in != 1 {
				report(comp, fmt.Sprintf("gate %s has %d inputs, requires exactly 1", comp.ID, in))
			}
		case network.TypeField:
			if in != 1 || out != 0 {
				report(comp, fmt.Sprintf("field %s has %d inputs and %d outputs, requires exactly 1 and 0", comp.ID, in, out))
			}
		}
	}

	return findings
}

// ComponentTypeCheck cross-checks each component's type against the
// canonical prefix table. A network typed under the legacy canal fallback
// surfaces its defaulted components here.
type ComponentTypeCheck struct{}

func NewComponentTypeCheck() *ComponentTypeCheck {
	return &ComponentTypeCheck{}
}

func (c *ComponentTypeCheck) Name() string {
	return "component_types"
}

func (c *ComponentTypeCheck) Validate(input *Input) []Finding {
	var findings []Finding

	for _, comp := range input.Network.Components() {
		canonical := network.TypeForID(comp.ID, network.StrictTyping)
		if comp.Type != canonical {
			findings = append(findings, Finding{
				Type:        TypeMismatch,
				Severity:    Error,
				Check:       c.Name(),
				ComponentID: comp.ID,
				Message: fmt.Sprintf("component %s is typed %s, canonical prefix table says %s",
					comp.ID, comp.Type, canonical),
				Details: map[string]any{
					"type":      comp.Type.String(),
					"canonical": canonical.String(),
				},
			})
		}
	}

	return findings
}
