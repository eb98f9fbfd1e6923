package network

// Network is the in-memory model of an irrigation distribution graph.
// Components are created once during ingestion; connections are added only
// between existing components and kept mirrored on both endpoints.
//
// Network is not safe for concurrent use. The analysis pipeline follows a
// single-writer discipline and publishes immutable result snapshots for
// concurrent readers (see pkg/analysis).
type Network struct {
	policy     TypingPolicy
	components map[string]*Component
	ids        []string // insertion order, for deterministic traversal
}

// New creates an empty network with strict id-prefix typing.
func New() *Network {
	return NewWithPolicy(StrictTyping)
}

// NewWithPolicy creates an empty network with the given typing policy.
func NewWithPolicy(policy TypingPolicy) *Network {
	return &Network{
		policy:     policy,
		components: make(map[string]*Component),
	}
}

// Policy returns the typing policy the network was created with.
func (n *Network) Policy() TypingPolicy {
	return n.policy
}

// AddComponent creates a new component. The component type is derived from
// the id prefix at creation time.
func (n *Network) AddComponent(id, label string) (*Component, error) {
	if _, exists := n.components[id]; exists {
		return nil, DuplicateIDError("AddComponent", id)
	}

	component := &Component{
		ID:    id,
		Label: label,
		Type:  TypeForID(id, n.policy),
	}
	n.components[id] = component
	n.ids = append(n.ids, id)
	return component, nil
}

// AddConnection records a directed edge between two existing components,
// updating both adjacency lists. Re-adding an existing edge is a no-op.
func (n *Network) AddConnection(sourceID, targetID string) error {
	source, exists := n.components[sourceID]
	if !exists {
		return UnknownIDError("AddConnection", sourceID)
	}
	target, exists := n.components[targetID]
	if !exists {
		return UnknownIDError("AddConnection", targetID)
	}
	if sourceID == targetID {
		return &NetworkError{Op: "AddConnection", Entity: "connection", ID: sourceID, Cause: ErrSelfLoop}
	}

	if source.HasConnectionTo(targetID) {
		return nil
	}
	source.ConnectionsTo = append(source.ConnectionsTo, targetID)
	target.ConnectionsFrom = append(target.ConnectionsFrom, sourceID)
	return nil
}

// Component returns the component with the given id.
func (n *Network) Component(id string) (*Component, bool) {
	c, ok := n.components[id]
	return c, ok
}

// ComponentIDs returns all component ids in insertion order.
func (n *Network) ComponentIDs() []string {
	ids := make([]string, len(n.ids))
	copy(ids, n.ids)
	return ids
}

// Components returns all components in insertion order.
func (n *Network) Components() []*Component {
	components := make([]*Component, 0, len(n.ids))
	for _, id := range n.ids {
		components = append(components, n.components[id])
	}
	return components
}

// Len returns the number of components.
func (n *Network) Len() int {
	return len(n.components)
}

// Children returns a copy of the outgoing connection ids of a component,
// or empty if the id is unknown. Mutating the returned slice cannot break
// the mirrored adjacency lists.
func (n *Network) Children(id string) []string {
	if c, ok := n.components[id]; ok {
		children := make([]string, len(c.ConnectionsTo))
		copy(children, c.ConnectionsTo)
		return children
	}
	return nil
}

// Parents returns a copy of the incoming connection ids of a component,
// or empty if the id is unknown.
func (n *Network) Parents(id string) []string {
	if c, ok := n.components[id]; ok {
		parents := make([]string, len(c.ConnectionsFrom))
		copy(parents, c.ConnectionsFrom)
		return parents
	}
	return nil
}

// SourceNodes returns the ids of components with no incoming connections.
func (n *Network) SourceNodes() []string {
	sources := make([]string, 0)
	for _, id := range n.ids {
		if len(n.components[id].ConnectionsFrom) == 0 {
			sources = append(sources, id)
		}
	}
	return sources
}

// SinkNodes returns the ids of components with no outgoing connections.
func (n *Network) SinkNodes() []string {
	sinks := make([]string, 0)
	for _, id := range n.ids {
		if len(n.components[id].ConnectionsTo) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// IsDisconnected reports whether a component has no edges in either
// direction. Unknown ids report false.
func (n *Network) IsDisconnected(id string) bool {
	c, ok := n.components[id]
	if !ok {
		return false
	}
	return c.IsDisconnected()
}

// SetManualOrder sets a manual hierarchy override on a component. Returns
// false if the id is unknown.
func (n *Network) SetManualOrder(id string, order int) bool {
	c, ok := n.components[id]
	if !ok {
		return false
	}
	c.ManualOrder = &order
	return true
}

// ComponentsByType returns the ids of all components of the given type, in
// insertion order.
func (n *Network) ComponentsByType(t ComponentType) []string {
	ids := make([]string, 0)
	for _, id := range n.ids {
		if n.components[id].Type == t {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone creates a deep copy of the network, used to snapshot the model
// before a recompute publishes new results.
func (n *Network) Clone() *Network {
	clone := &Network{
		policy:     n.policy,
		components: make(map[string]*Component, len(n.components)),
		ids:        make([]string, len(n.ids)),
	}
	copy(clone.ids, n.ids)
	for id, c := range n.components {
		clone.components[id] = c.Clone()
	}
	return clone
}
