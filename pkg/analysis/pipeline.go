// Package analysis orchestrates the full analysis pass over an irrigation
// network: Strahler ordering, block and confluence detection, hierarchy
// computation, and validation. Results are published as immutable
// snapshots so readers never observe a half-finished recompute.
package analysis

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sherzoddehqon/pilot-water/pkg/blocks"
	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/metrics"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
	"github.com/sherzoddehqon/pilot-water/pkg/strahler"
	"github.com/sherzoddehqon/pilot-water/pkg/validation"
)

// Pipeline drives the analysis stages over one network. Mutations and Run
// follow a single-writer discipline; Snapshot may be called concurrently
// with either, since published results are immutable.
type Pipeline struct {
	net      *network.Network
	config   validation.Config
	logger   logging.Logger
	registry *metrics.Registry

	assembler *blocks.Assembler
	validator *validation.Validator

	snapshot atomic.Pointer[Result]
}

// NewPipeline creates a pipeline over the given network. A nil logger
// discards output; a nil registry records nothing.
func NewPipeline(net *network.Network, config validation.Config, logger logging.Logger, registry *metrics.Registry) *Pipeline {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &Pipeline{
		net:       net,
		config:    config,
		logger:    logger,
		registry:  registry,
		validator: validation.NewValidator(config, logger),
	}
}

// Network returns the underlying network for direct structural queries.
// Callers share the pipeline's single-writer discipline.
func (p *Pipeline) Network() *network.Network {
	return p.net
}

// Run executes every analysis stage and atomically publishes the result.
// Structural defects do not abort the run; the validator reports them and
// the snapshot carries best-effort results.
func (p *Pipeline) Run() *Result {
	runStart := time.Now()
	steps := make([]Step, 0, 6)

	// Stage 1: component inventory.
	steps = append(steps, p.timed("components", p.componentStep))

	// Stage 2: Strahler ordering.
	var orders map[string]int
	analyzer := strahler.New()
	steps = append(steps, p.timed("strahler", func() Step {
		orders = analyzer.Analyze(p.net)
		items := make([]string, 0, analyzer.MaxOrder())
		for order := 1; order <= analyzer.MaxOrder(); order++ {
			items = append(items, fmt.Sprintf("order %d: %d components",
				order, len(analyzer.LevelsByOrder()[order])))
		}
		return Step{Description: "Strahler order assignment", Items: items}
	}))

	// Stage 3: block detection. Each run partitions afresh.
	p.assembler = blocks.NewAssembler(p.net, p.logger)
	steps = append(steps, p.timed("blocks", func() Step {
		p.assembler.DetectBlocks()
		p.routeManualOrders()
		items := make([]string, 0, p.assembler.Len())
		for _, b := range p.assembler.Blocks() {
			items = append(items, fmt.Sprintf("%s (%s): %d components, canal %s",
				b.ID, b.Type, b.Size(), b.DistributionCanal))
		}
		return Step{Description: "Irrigation block detection", Items: items}
	}))

	// Stage 4: confluence detection.
	steps = append(steps, p.timed("confluences", func() Step {
		p.assembler.DetectConfluences()
		var items []string
		for _, b := range p.assembler.Blocks() {
			for _, j := range b.ConfluenceJoints() {
				items = append(items, fmt.Sprintf("%s: %v -> %v in %s",
					j.ID, j.Upstream, j.Downstream, b.ID))
			}
		}
		return Step{Description: "Confluence point detection", Items: items}
	}))

	// Stage 5: block hierarchy. Operators review the computed levels.
	steps = append(steps, p.timed("hierarchy", func() Step {
		p.assembler.ComputeHierarchy()
		items := make([]string, 0, p.assembler.Len())
		for _, b := range p.assembler.Blocks() {
			items = append(items, fmt.Sprintf("%s: level %d", b.ID, b.Level))
		}
		return Step{Description: "Network hierarchy analysis", Items: items, RequiresApproval: true}
	}))

	// Stage 6: validation.
	var report *validation.Report
	steps = append(steps, p.timed("validation", func() Step {
		validationStart := time.Now()
		report = p.validator.Validate(&validation.Input{
			Network: p.net,
			Orders:  orders,
			Blocks:  p.assembler,
		})
		p.recordValidation(report, time.Since(validationStart))

		items := []string{
			fmt.Sprintf("%d errors, %d warnings", len(report.Errors), len(report.Warnings)),
		}
		return Step{Description: "Structure validation", Items: items}
	}))

	for i := range steps {
		steps[i].Number = i + 1
	}

	result := p.buildResult(analyzer, orders, steps, report)
	p.snapshot.Store(result)
	p.registry.RecordSnapshot()
	p.updateGauges(analyzer)

	p.logger.Info("analysis run completed",
		logging.Duration("elapsed", time.Since(runStart)),
		logging.Order(result.MaxOrder),
		logging.Count(len(result.Blocks)))
	return result
}

// timed wraps one pipeline stage with duration metrics.
func (p *Pipeline) timed(name string, stage func() Step) Step {
	start := time.Now()
	step := stage()
	p.registry.RecordAnalysisStep(name, "success", time.Since(start))
	return step
}

// routeManualOrders carries component-level manual overrides onto the
// blocks that own the components, so a fresh partition keeps honoring
// them.
func (p *Pipeline) routeManualOrders() {
	for _, comp := range p.net.Components() {
		if comp.ManualOrder == nil {
			continue
		}
		blockID, ok := p.assembler.ComponentBlock(comp.ID)
		if !ok {
			continue
		}
		if block, ok := p.assembler.Block(blockID); ok {
			block.SetManualOrder(*comp.ManualOrder)
		}
	}
}

func (p *Pipeline) componentStep() Step {
	items := make([]string, 0, p.net.Len())
	for _, comp := range p.net.Components() {
		items = append(items, fmt.Sprintf("%s (%s)", comp.ID, comp.Type))
	}
	return Step{Description: "Network component detection", Items: items}
}

func (p *Pipeline) buildResult(analyzer *strahler.Analyzer, orders map[string]int, steps []Step, report *validation.Report) *Result {
	summaries := make([]BlockSummary, 0, p.assembler.Len())
	for _, b := range p.assembler.Blocks() {
		summaries = append(summaries, BlockSummary{
			ID:                b.ID,
			Type:              b.Type,
			Level:             b.Level,
			DistributionCanal: b.DistributionCanal,
			Components:        b.Components(),
			InternalJoints:    len(b.InternalJoints()),
			ConfluenceJoints:  len(b.ConfluenceJoints()),
		})
	}

	return &Result{
		CompletedAt:    time.Now(),
		Orders:         orders,
		LevelsByOrder:  analyzer.LevelsByOrder(),
		MaxOrder:       analyzer.MaxOrder(),
		Blocks:         summaries,
		BlockHierarchy: p.assembler.Hierarchy(),
		Steps:          steps,
		Report:         report,
	}
}

// Snapshot returns the last published result. It is safe to call from
// other goroutines while a mutation or re-run is in progress.
func (p *Pipeline) Snapshot() (*Result, bool) {
	result := p.snapshot.Load()
	return result, result != nil
}

// invalidate drops the published snapshot after a structural change.
// Results are never incrementally patched; the next Run recomputes.
func (p *Pipeline) invalidate() {
	p.snapshot.Store(nil)
}

// AddComponent adds a component and invalidates the current results.
func (p *Pipeline) AddComponent(id, label string) error {
	if _, err := p.net.AddComponent(id, label); err != nil {
		p.registry.RecordNetworkMutation("add_component", "error")
		return err
	}
	p.registry.RecordNetworkMutation("add_component", "success")
	p.invalidate()
	return nil
}

// AddConnection adds an edge and invalidates the current results.
func (p *Pipeline) AddConnection(sourceID, targetID string) error {
	if err := p.net.AddConnection(sourceID, targetID); err != nil {
		p.registry.RecordNetworkMutation("add_connection", "error")
		return err
	}
	p.registry.RecordNetworkMutation("add_connection", "success")
	p.invalidate()
	return nil
}

// SetComponentManualOrder stores a manual order override on a component
// and routes it to the component's owning block when one exists. Returns
// false for unknown components.
func (p *Pipeline) SetComponentManualOrder(componentID string, order int) bool {
	if !p.net.SetManualOrder(componentID, order) {
		p.registry.RecordNetworkMutation("set_manual_order", "error")
		return false
	}
	if p.assembler != nil {
		if blockID, ok := p.assembler.ComponentBlock(componentID); ok {
			if block, ok := p.assembler.Block(blockID); ok {
				block.SetManualOrder(order)
			}
		}
	}
	p.registry.RecordNetworkMutation("set_manual_order", "success")
	p.invalidate()
	return true
}

// AllPaths enumerates simple paths between components; endID may be empty
// to terminate at any sink.
func (p *Pipeline) AllPaths(startID, endID string) [][]string {
	return p.net.AllPaths(startID, endID)
}

func (p *Pipeline) recordValidation(report *validation.Report, elapsed time.Duration) {
	status := "valid"
	if !report.Valid() {
		status = "invalid"
	}

	byCheck := make(map[string]map[string]int)
	record := func(f validation.Finding) {
		if byCheck[f.Check] == nil {
			byCheck[f.Check] = make(map[string]int)
		}
		byCheck[f.Check][f.Severity.String()]++
	}
	for _, f := range report.Errors {
		record(f)
	}
	for _, f := range report.Warnings {
		record(f)
	}
	p.registry.RecordValidation(status, elapsed, byCheck)
}

func (p *Pipeline) updateGauges(analyzer *strahler.Analyzer) {
	byType := make(map[string]int)
	connections := 0
	for _, comp := range p.net.Components() {
		byType[comp.Type.String()]++
		connections += len(comp.ConnectionsTo)
	}
	p.registry.UpdateNetworkSize(byType, connections)

	blocksByType := make(map[string]int)
	joints := 0
	for _, b := range p.assembler.Blocks() {
		blocksByType[string(b.Type)]++
		joints += len(b.Joints())
	}
	p.registry.UpdateAnalysisResults(analyzer.MaxOrder(), blocksByType, joints)
}
