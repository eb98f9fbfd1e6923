package blocks

import (
	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// DetectBlocks seeds one block per root canal (a canal-typed component with
// no incoming edges) and walks forward from each seed, absorbing directly
// connected control devices and fields whose inbound edges all lie inside
// the block. Each absorption records an internal joint. The walk stops at
// any other canal, which roots its own block.
func (a *Assembler) DetectBlocks() {
	timer := logging.StartTimer(a.logger, "block detection", logging.Operation("detect_blocks"))
	defer timer.End()

	for _, comp := range a.net.Components() {
		if comp.Type != network.TypeCanal {
			continue
		}
		if len(comp.ConnectionsFrom) > 0 {
			continue
		}
		if _, assigned := a.componentToBlock[comp.ID]; assigned {
			continue
		}

		blockID := a.CreateBlock(BlockMain, nil)
		a.absorbCanalGroup(comp.ID, blockID)
	}
}

// absorbCanalGroup walks forward from a seed canal, pulling control devices
// and locally-fed fields into the block.
func (a *Assembler) absorbCanalGroup(canalID, blockID string) {
	a.AssignComponent(canalID, blockID)

	queue := []string{canalID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, childID := range a.net.Children(current) {
			child, ok := a.net.Component(childID)
			if !ok {
				continue
			}
			if _, assigned := a.componentToBlock[childID]; assigned {
				continue
			}

			switch {
			case child.Type.IsControl():
				a.AssignComponent(childID, blockID)
				a.CreateJoint(blockID, []string{current}, []string{childID}, false)
				queue = append(queue, childID)
			case child.Type == network.TypeField && a.fedOnlyBy(childID, blockID):
				a.AssignComponent(childID, blockID)
				a.CreateJoint(blockID, []string{current}, []string{childID}, false)
			}
			// Canals and distribution points boundary the walk; another
			// canal roots its own block.
		}
	}

	block := a.blocks[blockID]
	if block.OwnsField(a.isField) {
		block.Type = BlockTerminal
	}
}

// fedOnlyBy reports whether every parent of the component is already owned
// by the given block.
func (a *Assembler) fedOnlyBy(componentID, blockID string) bool {
	for _, parentID := range a.net.Parents(componentID) {
		if owner, ok := a.componentToBlock[parentID]; !ok || owner != blockID {
			return false
		}
	}
	return true
}

func (a *Assembler) isField(componentID string) bool {
	comp, ok := a.net.Component(componentID)
	return ok && comp.Type == network.TypeField
}

// DetectConfluences inspects every component with more than one incoming
// edge. When an incoming edge originates in a different block than the
// receiving component's, a confluence joint is recorded on the downstream
// block.
func (a *Assembler) DetectConfluences() {
	timer := logging.StartTimer(a.logger, "confluence detection", logging.Operation("detect_confluences"))
	defer timer.End()

	for _, comp := range a.net.Components() {
		if len(comp.ConnectionsFrom) <= 1 {
			continue
		}
		blockID, assigned := a.componentToBlock[comp.ID]
		if !assigned {
			continue
		}

		for _, sourceID := range comp.ConnectionsFrom {
			sourceBlock, ok := a.componentToBlock[sourceID]
			if !ok || sourceBlock == blockID {
				continue
			}
			a.CreateJoint(blockID, []string{sourceID}, []string{comp.ID}, true)
		}
	}
}
