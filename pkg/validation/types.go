// Package validation runs a fixed battery of structural and domain-rule
// checks over a network, its computed orders, and its block partition.
// Findings are collected, never thrown; callers decide whether errors
// block further action.
package validation

import (
	"github.com/sherzoddehqon/pilot-water/pkg/blocks"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// Severity indicates the importance of a finding
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// FindingType categorizes a validation finding
type FindingType int

const (
	Disconnected FindingType = iota
	MissingEndpoint
	CycleDetected
	StaleOrder
	InvalidHierarchyEdge
	ForbiddenConnection
	CardinalityViolation
	TypeMismatch
	UnreachableField
	UncontrolledSupply
	InvalidBlockStructure
	BlockWithoutFields
)

func (ft FindingType) String() string {
	switch ft {
	case Disconnected:
		return "Disconnected"
	case MissingEndpoint:
		return "MissingEndpoint"
	case CycleDetected:
		return "CycleDetected"
	case StaleOrder:
		return "StaleOrder"
	case InvalidHierarchyEdge:
		return "InvalidHierarchyEdge"
	case ForbiddenConnection:
		return "ForbiddenConnection"
	case CardinalityViolation:
		return "CardinalityViolation"
	case TypeMismatch:
		return "TypeMismatch"
	case UnreachableField:
		return "UnreachableField"
	case UncontrolledSupply:
		return "UncontrolledSupply"
	case InvalidBlockStructure:
		return "InvalidBlockStructure"
	case BlockWithoutFields:
		return "BlockWithoutFields"
	default:
		return "Unknown"
	}
}

// Finding represents one validation finding
type Finding struct {
	Type        FindingType
	Severity    Severity
	Check       string
	ComponentID string
	BlockID     string
	Message     string
	Details     map[string]any
}

// Input bundles everything the checks inspect. Blocks may be nil when no
// partition has been assembled yet; block-dependent checks then skip.
type Input struct {
	Network *network.Network
	Orders  map[string]int
	Blocks  *blocks.Assembler
}

// Check is the interface every validation rule implements. A check
// inspects the input and returns its findings, empty when the rule holds.
type Check interface {
	Validate(input *Input) []Finding

	// Name returns a stable, human-readable name for the check
	Name() string
}
