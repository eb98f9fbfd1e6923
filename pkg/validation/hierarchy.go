package validation

import (
	"fmt"

	"github.com/sherzoddehqon/pilot-water/pkg/blocks"
	"github.com/sherzoddehqon/pilot-water/pkg/strahler"
)

// HierarchyCheck verifies that stored orders agree with a freshly
// recomputed Strahler pass, and that the block hierarchy is monotone:
// a block feeding another through a confluence must sit strictly below
// it.
type HierarchyCheck struct{}

func NewHierarchyCheck() *HierarchyCheck {
	return &HierarchyCheck{}
}

func (c *HierarchyCheck) Name() string {
	return "hierarchy"
}

func (c *HierarchyCheck) Validate(input *Input) []Finding {
	var findings []Finding

	// Recompute on a clone so stored orders stay untouched.
	fresh := strahler.New().Analyze(input.Network.Clone())
	for _, comp := range input.Network.Components() {
		if comp.Order != fresh[comp.ID] {
			findings = append(findings, Finding{
				Type:        StaleOrder,
				Severity:    Error,
				Check:       c.Name(),
				ComponentID: comp.ID,
				Message: fmt.Sprintf("component %s has stored order %d, recomputed %d",
					comp.ID, comp.Order, fresh[comp.ID]),
				Details: map[string]any{
					"stored":     comp.Order,
					"recomputed": fresh[comp.ID],
				},
			})
		}
	}

	if input.Blocks == nil {
		return findings
	}

	for _, block := range input.Blocks.Blocks() {
		if block.Level < 1 {
			findings = append(findings, Finding{
				Type:     StaleOrder,
				Severity: Error,
				Check:    c.Name(),
				BlockID:  block.ID,
				Message:  fmt.Sprintf("block %s has no computed hierarchy level", block.ID),
			})
			continue
		}

		for _, upstreamID := range upstreamBlocks(input.Blocks, block.ID) {
			upstream, ok := input.Blocks.Block(upstreamID)
			if !ok {
				continue
			}
			if upstream.Level >= block.Level {
				findings = append(findings, Finding{
					Type:     InvalidHierarchyEdge,
					Severity: Error,
					Check:    c.Name(),
					BlockID:  block.ID,
					Message: fmt.Sprintf("block %s (level %d) feeds into block %s (level %d)",
						upstreamID, upstream.Level, block.ID, block.Level),
					Details: map[string]any{
						"upstream_block": upstreamID,
						"upstream_level": upstream.Level,
						"level":          block.Level,
					},
				})
			}
		}
	}

	return findings
}

// upstreamBlocks returns the distinct blocks feeding the given block
// through its confluence joints, in first-seen order.
func upstreamBlocks(assembler *blocks.Assembler, blockID string) []string {
	block, ok := assembler.Block(blockID)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, joint := range block.ConfluenceJoints() {
		for _, upstreamID := range joint.Upstream {
			owner, ok := assembler.ComponentBlock(upstreamID)
			if !ok || owner == blockID || seen[owner] {
				continue
			}
			seen[owner] = true
			out = append(out, owner)
		}
	}
	return out
}
