package validation

import "fmt"

// TopologyCheck verifies the structural soundness of the graph: no
// disconnected components, at least one source and one sink, and no
// cycles. It runs before every other check because downstream rules are
// unreliable on a cyclic graph.
type TopologyCheck struct{}

func NewTopologyCheck() *TopologyCheck {
	return &TopologyCheck{}
}

func (c *TopologyCheck) Name() string {
	return "topology"
}

func (c *TopologyCheck) Validate(input *Input) []Finding {
	var findings []Finding
	net := input.Network

	if memberID, cyclic := net.HasCycle(); cyclic {
		findings = append(findings, Finding{
			Type:        CycleDetected,
			Severity:    Error,
			Check:       c.Name(),
			ComponentID: memberID,
			Message:     fmt.Sprintf("network contains a cycle through component %s", memberID),
		})
	}

	for _, comp := range net.Components() {
		if comp.IsDisconnected() {
			findings = append(findings, Finding{
				Type:        Disconnected,
				Severity:    Error,
				Check:       c.Name(),
				ComponentID: comp.ID,
				Message:     fmt.Sprintf("component %s is disconnected from the network", comp.ID),
			})
		}
	}

	if net.Len() > 0 {
		if len(net.SourceNodes()) == 0 {
			findings = append(findings, Finding{
				Type:     MissingEndpoint,
				Severity: Error,
				Check:    c.Name(),
				Message:  "network has no source node",
			})
		}
		if len(net.SinkNodes()) == 0 {
			findings = append(findings, Finding{
				Type:     MissingEndpoint,
				Severity: Error,
				Check:    c.Name(),
				Message:  "network has no sink node",
			})
		}
	}

	return findings
}
