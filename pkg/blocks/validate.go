package blocks

import "fmt"

// ValidateStructure checks the internal consistency of the block
// partition: parent and child references must resolve, terminal blocks
// must be leaves, every block needs a distribution canal, and component
// ownership must agree between the blocks and the assignment index.
func (a *Assembler) ValidateStructure() []string {
	var errs []string

	for _, id := range a.blockOrder {
		block := a.blocks[id]

		if block.ParentID != "" {
			parent, ok := a.blocks[block.ParentID]
			if !ok {
				errs = append(errs, fmt.Sprintf("block %s references non-existent parent %s", id, block.ParentID))
			} else if _, isChild := parent.childIDs[id]; !isChild {
				errs = append(errs, fmt.Sprintf("inconsistent parent-child relationship between %s and %s", parent.ID, id))
			}
		}
		for _, childID := range block.childOrder {
			if _, ok := a.blocks[childID]; !ok {
				errs = append(errs, fmt.Sprintf("block %s references non-existent child %s", id, childID))
			}
		}

		if block.Type == BlockTerminal && len(block.childIDs) > 0 {
			errs = append(errs, fmt.Sprintf("terminal block %s should not have children", id))
		}
		if block.DistributionCanal == "" {
			errs = append(errs, fmt.Sprintf("block %s has no distribution canal", id))
		}
	}

	for compID, blockID := range a.componentToBlock {
		block, ok := a.blocks[blockID]
		if !ok {
			errs = append(errs, fmt.Sprintf("component %s assigned to non-existent block %s", compID, blockID))
			continue
		}
		if !block.Contains(compID) {
			errs = append(errs, fmt.Sprintf("inconsistent block assignment for component %s", compID))
		}
	}

	return errs
}
