package analysis

import (
	"time"

	"github.com/sherzoddehqon/pilot-water/pkg/blocks"
	"github.com/sherzoddehqon/pilot-water/pkg/validation"
)

// Step is one stage of the analysis pipeline with a human-readable
// summary of what it found. Steps flagged RequiresApproval carry results
// an operator is expected to review before acting on them.
type Step struct {
	Number           int
	Description      string
	Items            []string
	RequiresApproval bool
}

// BlockSummary is the read-only view of one block in a published result.
type BlockSummary struct {
	ID                string
	Type              blocks.BlockType
	Level             int
	DistributionCanal string
	Components        []string
	InternalJoints    int
	ConfluenceJoints  int
}

// Result is an immutable snapshot of one completed analysis run.
// Published results are never mutated; a re-run publishes a new one.
type Result struct {
	CompletedAt    time.Time
	Orders         map[string]int
	LevelsByOrder  map[int][]string
	MaxOrder       int
	Blocks         []BlockSummary
	BlockHierarchy map[int][]string
	Steps          []Step
	Report         *validation.Report
}

// Order returns the computed order of a component in this snapshot.
func (r *Result) Order(componentID string) (int, bool) {
	order, ok := r.Orders[componentID]
	return order, ok
}

// Block returns the summary of one block in this snapshot.
func (r *Result) Block(blockID string) (BlockSummary, bool) {
	for _, b := range r.Blocks {
		if b.ID == blockID {
			return b, true
		}
	}
	return BlockSummary{}, false
}
