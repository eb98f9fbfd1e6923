package validation

import (
	"fmt"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// BlockStructureCheck verifies the block partition: internal consistency
// of the assembler's bookkeeping, a canal-typed distribution canal per
// block, and a warning for blocks that irrigate nothing.
type BlockStructureCheck struct{}

func NewBlockStructureCheck() *BlockStructureCheck {
	return &BlockStructureCheck{}
}

func (c *BlockStructureCheck) Name() string {
	return "block_structure"
}

func (c *BlockStructureCheck) Validate(input *Input) []Finding {
	if input.Blocks == nil {
		return nil
	}

	var findings []Finding

	for _, msg := range input.Blocks.ValidateStructure() {
		findings = append(findings, Finding{
			Type:     InvalidBlockStructure,
			Severity: Error,
			Check:    c.Name(),
			Message:  msg,
		})
	}

	for _, block := range input.Blocks.Blocks() {
		if block.DistributionCanal != "" {
			canal, ok := input.Network.Component(block.DistributionCanal)
			if ok && canal.Type != network.TypeCanal {
				findings = append(findings, Finding{
					Type:     InvalidBlockStructure,
					Severity: Error,
					Check:    c.Name(),
					BlockID:  block.ID,
					Message: fmt.Sprintf("block %s has non-canal distribution canal %s (%s)",
						block.ID, block.DistributionCanal, canal.Type),
				})
			}
		}

		hasField := false
		for _, compID := range block.Components() {
			if comp, ok := input.Network.Component(compID); ok && comp.Type == network.TypeField {
				hasField = true
				break
			}
		}
		if !hasField {
			findings = append(findings, Finding{
				Type:     BlockWithoutFields,
				Severity: Warning,
				Check:    c.Name(),
				BlockID:  block.ID,
				Message:  fmt.Sprintf("block %s has no fields", block.ID),
			})
		}
	}

	return findings
}
