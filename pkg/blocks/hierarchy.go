package blocks

import (
	"github.com/sherzoddehqon/pilot-water/pkg/logging"
)

// ComputeHierarchy assigns a hierarchy level to every block in three
// phases. First, blocks owning at least one field and carrying no manual
// order are seeded to level 1. Second, blocks holding confluence joints
// take max(level of each distinct upstream block) + 1, iterated until the
// propagation settles. Third, remaining blocks take max(child block
// levels) + 1 through a post-order walk of the block tree. A manual order
// supplied by the caller always wins over propagation.
func (a *Assembler) ComputeHierarchy() {
	timer := logging.StartTimer(a.logger, "hierarchy computation", logging.Operation("compute_hierarchy"))
	defer timer.End()

	a.assignLevels()

	a.logger.Info("hierarchy computed", logging.Count(len(a.blocks)))
}

// assignLevels runs the three hierarchy phases. Tree edits re-run it in
// full so seeded and propagated levels survive a relationship change.
func (a *Assembler) assignLevels() {
	// Effective levels blend user overrides with seeded and propagated
	// values without mutating the overrides themselves.
	effective := make(map[string]int, len(a.blocks))
	pinned := make(map[string]bool, len(a.blocks))
	for _, id := range a.blockOrder {
		if order := a.blocks[id].ManualOrder; order != nil {
			effective[id] = *order
			pinned[id] = true
		}
	}

	// Phase 1: field-owning blocks anchor the hierarchy at level 1.
	for _, id := range a.blockOrder {
		block := a.blocks[id]
		if pinned[id] {
			continue
		}
		if block.OwnsField(a.isField) {
			effective[id] = 1
		}
	}

	// Phase 2: confluence propagation. Each pass can raise at most the
	// blocks downstream of an already-leveled one, so the fixpoint
	// arrives within len(blocks) passes.
	for pass := 0; pass < len(a.blocks); pass++ {
		changed := false
		for _, id := range a.blockOrder {
			if pinned[id] {
				continue
			}
			block := a.blocks[id]

			maxInput := 0
			for _, joint := range block.ConfluenceJoints() {
				for _, upstreamID := range joint.Upstream {
					upstreamBlock, ok := a.componentToBlock[upstreamID]
					if !ok || upstreamBlock == id {
						continue
					}
					if level, ok := effective[upstreamBlock]; ok && level > maxInput {
						maxInput = level
					}
				}
			}
			if maxInput > 0 && effective[id] != maxInput+1 {
				effective[id] = maxInput + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Phase 3: tree propagation fills in whatever is still unset.
	a.computeTreeLevels(effective)

	// Joints inherit the level of their owning block.
	for _, id := range a.blockOrder {
		block := a.blocks[id]
		for _, joint := range block.Joints() {
			joint.Level = block.Level
		}
	}
}

// levelFrame is one level of the iterative post-order tree walk.
type levelFrame struct {
	id   string
	next int
}

// computeTreeLevels assigns every block its level: the effective value
// when one exists, otherwise max(child levels) + 1. The walk is post-order
// over the block forest with an explicit stack. Single-parent enforcement
// keeps the structure a forest, so the walk terminates by construction.
func (a *Assembler) computeTreeLevels(effective map[string]int) {
	for _, id := range a.blockOrder {
		a.blocks[id].Level = 0
	}

	for _, rootID := range a.blockOrder {
		if a.blocks[rootID].ParentID != "" {
			continue
		}

		stack := []levelFrame{{id: rootID}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			children := a.blocks[f.id].childOrder

			if f.next < len(children) {
				childID := children[f.next]
				f.next++
				stack = append(stack, levelFrame{id: childID})
				continue
			}

			block := a.blocks[f.id]
			if level, ok := effective[f.id]; ok {
				block.Level = level
			} else {
				maxChild := 0
				for _, childID := range block.childOrder {
					if child := a.blocks[childID]; child.Level > maxChild {
						maxChild = child.Level
					}
				}
				block.Level = maxChild + 1
			}
			stack = stack[:len(stack)-1]
		}
	}
}
