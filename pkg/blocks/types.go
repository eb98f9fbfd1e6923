// Package blocks partitions an irrigation network into sub-basins rooted at
// distribution canals, records the joints connecting them, and computes a
// block-level hierarchy blending manual overrides with confluence
// propagation.
package blocks

// JointType distinguishes joints inside one block from joints crossing
// block boundaries.
type JointType string

const (
	JointInternal   JointType = "internal"
	JointConfluence JointType = "confluence"
)

// BlockType classifies a block's role in the distribution hierarchy.
type BlockType string

const (
	BlockMain         BlockType = "main"
	BlockDistribution BlockType = "distribution"
	BlockTerminal     BlockType = "terminal"
)

// Joint records a connection point between components. Upstream and
// downstream lists keep insertion order.
type Joint struct {
	ID         string
	Type       JointType
	Upstream   []string
	Downstream []string
	Level      int
}

// IsConfluence reports whether the joint crosses block boundaries.
func (j *Joint) IsConfluence() bool {
	return j.Type == JointConfluence
}

// Block is one sub-basin of the network. Component membership is mutually
// exclusive across blocks. Level 0 means the hierarchy has not been
// computed yet.
type Block struct {
	ID                string
	Type              BlockType
	DistributionCanal string
	Level             int
	ManualOrder       *int
	ParentID          string

	components map[string]struct{}
	compOrder  []string
	joints     map[string]*Joint
	jointOrder []string
	childIDs   map[string]struct{}
	childOrder []string
}

func newBlock(id string, blockType BlockType) *Block {
	return &Block{
		ID:         id,
		Type:       blockType,
		components: make(map[string]struct{}),
		joints:     make(map[string]*Joint),
		childIDs:   make(map[string]struct{}),
	}
}

// SetManualOrder pins the block's hierarchy level to an external override.
func (b *Block) SetManualOrder(order int) {
	b.ManualOrder = &order
}

// addComponent adds a component id to the block. The first canal added
// becomes the block's distribution canal.
func (b *Block) addComponent(componentID string, isCanal bool) {
	if _, ok := b.components[componentID]; ok {
		return
	}
	b.components[componentID] = struct{}{}
	b.compOrder = append(b.compOrder, componentID)
	if isCanal && b.DistributionCanal == "" {
		b.DistributionCanal = componentID
	}
}

// removeComponent removes a component id from the block.
func (b *Block) removeComponent(componentID string) bool {
	if _, ok := b.components[componentID]; !ok {
		return false
	}
	delete(b.components, componentID)
	for i, id := range b.compOrder {
		if id == componentID {
			b.compOrder = append(b.compOrder[:i], b.compOrder[i+1:]...)
			break
		}
	}
	if componentID == b.DistributionCanal {
		b.DistributionCanal = ""
	}
	return true
}

// Contains reports whether the block owns the component.
func (b *Block) Contains(componentID string) bool {
	_, ok := b.components[componentID]
	return ok
}

// Components returns the owned component ids in insertion order.
func (b *Block) Components() []string {
	out := make([]string, len(b.compOrder))
	copy(out, b.compOrder)
	return out
}

// Size returns the number of owned components.
func (b *Block) Size() int {
	return len(b.components)
}

func (b *Block) addJoint(j *Joint) {
	if _, ok := b.joints[j.ID]; ok {
		return
	}
	b.joints[j.ID] = j
	b.jointOrder = append(b.jointOrder, j.ID)
}

// Joint returns the joint with the given id, if the block holds it.
func (b *Block) Joint(jointID string) (*Joint, bool) {
	j, ok := b.joints[jointID]
	return j, ok
}

// Joints returns all joints in insertion order.
func (b *Block) Joints() []*Joint {
	out := make([]*Joint, 0, len(b.jointOrder))
	for _, id := range b.jointOrder {
		out = append(out, b.joints[id])
	}
	return out
}

// InternalJoints returns joints fully inside the block.
func (b *Block) InternalJoints() []*Joint {
	var out []*Joint
	for _, id := range b.jointOrder {
		if j := b.joints[id]; !j.IsConfluence() {
			out = append(out, j)
		}
	}
	return out
}

// ConfluenceJoints returns joints crossing into the block from another.
func (b *Block) ConfluenceJoints() []*Joint {
	var out []*Joint
	for _, id := range b.jointOrder {
		if j := b.joints[id]; j.IsConfluence() {
			out = append(out, j)
		}
	}
	return out
}

func (b *Block) addChild(childID string) {
	if _, ok := b.childIDs[childID]; ok {
		return
	}
	b.childIDs[childID] = struct{}{}
	b.childOrder = append(b.childOrder, childID)
}

func (b *Block) removeChild(childID string) bool {
	if _, ok := b.childIDs[childID]; !ok {
		return false
	}
	delete(b.childIDs, childID)
	for i, id := range b.childOrder {
		if id == childID {
			b.childOrder = append(b.childOrder[:i], b.childOrder[i+1:]...)
			break
		}
	}
	return true
}

// ChildIDs returns the child block ids in insertion order.
func (b *Block) ChildIDs() []string {
	out := make([]string, len(b.childOrder))
	copy(out, b.childOrder)
	return out
}

// OwnsField reports whether any owned component is field-typed, using the
// caller-supplied classifier.
func (b *Block) OwnsField(isField func(componentID string) bool) bool {
	for _, id := range b.compOrder {
		if isField(id) {
			return true
		}
	}
	return false
}
