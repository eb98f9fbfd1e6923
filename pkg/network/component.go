package network

import "strings"

// ComponentType classifies a network component. The type is never stored
// independently; it is derived from the component's id prefix.
type ComponentType string

const (
	TypeCanal             ComponentType = "canal"
	TypeDistributionPoint ComponentType = "distribution_point"
	TypeGate              ComponentType = "gate"
	TypeSmartWater        ComponentType = "smart_water"
	TypeField             ComponentType = "field"
	TypeUnknown           ComponentType = "unknown"
)

// prefixTypes is the canonical id-prefix table.
var prefixTypes = map[string]ComponentType{
	"MC": TypeCanal,
	"DP": TypeDistributionPoint,
	"ZT": TypeGate,
	"SW": TypeSmartWater,
	"F":  TypeField,
}

// TypingPolicy controls how unrecognized id prefixes are typed. A historic
// variant of the model silently treated every unrecognized prefix as a canal;
// that behavior is kept reachable but never the default.
type TypingPolicy int

const (
	// StrictTyping maps unrecognized prefixes to TypeUnknown.
	StrictTyping TypingPolicy = iota
	// LegacyCanalTyping maps unrecognized prefixes to TypeCanal.
	LegacyCanalTyping
)

// IDPrefix returns the leading alphabetic run of an id ("MC12" -> "MC").
func IDPrefix(id string) string {
	end := 0
	for end < len(id) {
		c := id[end]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			break
		}
		end++
	}
	return id[:end]
}

// TypeForID derives the component type for an id under the given policy.
func TypeForID(id string, policy TypingPolicy) ComponentType {
	if t, ok := prefixTypes[strings.ToUpper(IDPrefix(id))]; ok {
		return t
	}
	if policy == LegacyCanalTyping {
		return TypeCanal
	}
	return TypeUnknown
}

// IsControl reports whether the type is a flow control device.
func (t ComponentType) IsControl() bool {
	return t == TypeGate || t == TypeSmartWater
}

func (t ComponentType) String() string {
	return string(t)
}

// Component is a node in the irrigation network. Adjacency is stored as
// ordered id lists on both endpoints; the Network keeps them mirrored.
type Component struct {
	ID    string
	Label string
	Type  ComponentType

	// Order is the Strahler order assigned by the analyzer; 0 means unset.
	Order int
	// ManualOrder overrides computed hierarchy placement when non-nil.
	ManualOrder *int
	// BlockID names the owning block, empty while unassigned.
	BlockID string

	ConnectionsTo   []string
	ConnectionsFrom []string
}

// HasConnectionTo reports whether an outgoing edge to target is recorded.
func (c *Component) HasConnectionTo(target string) bool {
	for _, id := range c.ConnectionsTo {
		if id == target {
			return true
		}
	}
	return false
}

// IsDisconnected reports whether the component has no edges at all.
func (c *Component) IsDisconnected() bool {
	return len(c.ConnectionsTo) == 0 && len(c.ConnectionsFrom) == 0
}

// Clone creates a deep copy of a component.
func (c *Component) Clone() *Component {
	clone := &Component{
		ID:              c.ID,
		Label:           c.Label,
		Type:            c.Type,
		Order:           c.Order,
		BlockID:         c.BlockID,
		ConnectionsTo:   make([]string, len(c.ConnectionsTo)),
		ConnectionsFrom: make([]string, len(c.ConnectionsFrom)),
	}
	copy(clone.ConnectionsTo, c.ConnectionsTo)
	copy(clone.ConnectionsFrom, c.ConnectionsFrom)
	if c.ManualOrder != nil {
		order := *c.ManualOrder
		clone.ManualOrder = &order
	}
	return clone
}
