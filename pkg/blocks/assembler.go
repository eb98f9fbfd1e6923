package blocks

import (
	"fmt"

	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// Assembler partitions a network into blocks and maintains the block
// hierarchy. Block and joint ids are generated from instance-owned
// counters, so two assemblers never share id sequences.
//
// Not safe for concurrent use; callers follow the same single-writer
// discipline as the network itself.
type Assembler struct {
	net    *network.Network
	logger logging.Logger

	blocks           map[string]*Block
	blockOrder       []string
	componentToBlock map[string]string

	nextBlockID int
	nextJointID int
}

// NewAssembler creates an assembler over the given network.
func NewAssembler(net *network.Network, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Assembler{
		net:              net,
		logger:           logger,
		blocks:           make(map[string]*Block),
		componentToBlock: make(map[string]string),
		nextBlockID:      1,
		nextJointID:      1,
	}
}

// CreateBlock creates a new block with a generated id and returns the id.
// A non-nil manualOrder pins the block's level before any computation.
func (a *Assembler) CreateBlock(blockType BlockType, manualOrder *int) string {
	id := fmt.Sprintf("B%d", a.nextBlockID)
	a.nextBlockID++

	b := newBlock(id, blockType)
	if manualOrder != nil {
		b.SetManualOrder(*manualOrder)
	}
	a.blocks[id] = b
	a.blockOrder = append(a.blockOrder, id)

	a.logger.Info("created block",
		logging.BlockID(id),
		logging.String("type", string(blockType)))
	return id
}

// Block returns the block with the given id.
func (a *Assembler) Block(blockID string) (*Block, bool) {
	b, ok := a.blocks[blockID]
	return b, ok
}

// Blocks returns all blocks in creation order.
func (a *Assembler) Blocks() []*Block {
	out := make([]*Block, 0, len(a.blockOrder))
	for _, id := range a.blockOrder {
		out = append(out, a.blocks[id])
	}
	return out
}

// Len returns the number of blocks.
func (a *Assembler) Len() int {
	return len(a.blocks)
}

// AssignComponent moves a component into a block. The component leaves any
// prior owning block first, preserving the one-owner invariant. Returns
// false when either id is unknown.
func (a *Assembler) AssignComponent(componentID, blockID string) bool {
	block, ok := a.blocks[blockID]
	if !ok {
		return false
	}
	comp, ok := a.net.Component(componentID)
	if !ok {
		return false
	}

	if oldID, assigned := a.componentToBlock[componentID]; assigned {
		if oldID == blockID {
			return true
		}
		a.blocks[oldID].removeComponent(componentID)
	}

	block.addComponent(componentID, comp.Type == network.TypeCanal)
	a.componentToBlock[componentID] = blockID
	comp.BlockID = blockID

	a.logger.Debug("assigned component",
		logging.ComponentID(componentID),
		logging.BlockID(blockID))
	return true
}

// ComponentBlock returns the id of the block owning a component.
func (a *Assembler) ComponentBlock(componentID string) (string, bool) {
	id, ok := a.componentToBlock[componentID]
	return id, ok
}

// CreateJoint records a joint inside a block and returns the joint id.
// Returns false when the block is unknown.
func (a *Assembler) CreateJoint(blockID string, upstream, downstream []string, confluence bool) (string, bool) {
	block, ok := a.blocks[blockID]
	if !ok {
		return "", false
	}

	id := fmt.Sprintf("J%d", a.nextJointID)
	a.nextJointID++

	jointType := JointInternal
	if confluence {
		jointType = JointConfluence
	}
	j := &Joint{
		ID:         id,
		Type:       jointType,
		Upstream:   append([]string(nil), upstream...),
		Downstream: append([]string(nil), downstream...),
	}
	block.addJoint(j)

	a.logger.Debug("created joint",
		logging.JointID(id),
		logging.BlockID(blockID),
		logging.String("type", string(jointType)))
	return id, true
}

// SetBlockRelationship attaches child to parent in the block tree. A block
// has at most one parent: any previous parent loses the child first.
// Self-parenting and unknown ids are rejected. Levels along the affected
// chain are recomputed.
func (a *Assembler) SetBlockRelationship(parentID, childID string) bool {
	if parentID == childID {
		return false
	}
	parent, ok := a.blocks[parentID]
	if !ok {
		return false
	}
	child, ok := a.blocks[childID]
	if !ok {
		return false
	}

	// Attaching an ancestor below its descendant would close a loop in
	// the block tree.
	for cur := parent; cur.ParentID != ""; {
		if cur.ParentID == childID {
			return false
		}
		cur = a.blocks[cur.ParentID]
	}

	if child.ParentID != "" && child.ParentID != parentID {
		a.blocks[child.ParentID].removeChild(childID)
	}
	parent.addChild(childID)
	child.ParentID = parentID

	a.assignLevels()

	a.logger.Info("set block relationship",
		logging.String("parent", parentID),
		logging.String("child", childID))
	return true
}

// DeleteBlock removes a block. Its children are orphaned rather than
// deleted, and its components return to the unassigned pool.
func (a *Assembler) DeleteBlock(blockID string) bool {
	block, ok := a.blocks[blockID]
	if !ok {
		return false
	}

	if block.ParentID != "" {
		if parent, ok := a.blocks[block.ParentID]; ok {
			parent.removeChild(blockID)
		}
	}
	for _, childID := range block.ChildIDs() {
		if child, ok := a.blocks[childID]; ok {
			child.ParentID = ""
		}
	}
	for _, compID := range block.Components() {
		delete(a.componentToBlock, compID)
		if comp, ok := a.net.Component(compID); ok {
			comp.BlockID = ""
		}
	}

	delete(a.blocks, blockID)
	for i, id := range a.blockOrder {
		if id == blockID {
			a.blockOrder = append(a.blockOrder[:i], a.blockOrder[i+1:]...)
			break
		}
	}

	a.logger.Info("deleted block", logging.BlockID(blockID))
	return true
}

// Hierarchy groups block ids by their computed level. Blocks with no
// computed level are omitted.
func (a *Assembler) Hierarchy() map[int][]string {
	hierarchy := make(map[int][]string)
	for _, id := range a.blockOrder {
		if level := a.blocks[id].Level; level > 0 {
			hierarchy[level] = append(hierarchy[level], id)
		}
	}
	return hierarchy
}
