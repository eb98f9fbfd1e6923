package validation

import (
	"reflect"
	"testing"

	"github.com/sherzoddehqon/pilot-water/pkg/blocks"
	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
	"github.com/sherzoddehqon/pilot-water/pkg/strahler"
)

func buildNetwork(t *testing.T, policy network.TypingPolicy, ids []string, edges [][2]string) *network.Network {
	t.Helper()
	n := network.NewWithPolicy(policy)
	for _, id := range ids {
		if _, err := n.AddComponent(id, "label "+id); err != nil {
			t.Fatalf("AddComponent(%s) failed: %v", id, err)
		}
	}
	for _, e := range edges {
		if err := n.AddConnection(e[0], e[1]); err != nil {
			t.Fatalf("AddConnection(%s, %s) failed: %v", e[0], e[1], err)
		}
	}
	return n
}

// cleanInput builds a small network that satisfies every rule, with
// orders and blocks computed.
func cleanInput(t *testing.T) *Input {
	t.Helper()
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "ZT1", "SW1", "F1", "F2"},
		[][2]string{
			{"MC1", "ZT1"}, {"ZT1", "F1"},
			{"MC1", "SW1"}, {"SW1", "F2"},
		})
	orders := strahler.New().Analyze(n)

	a := blocks.NewAssembler(n, logging.NewNopLogger())
	a.DetectBlocks()
	a.DetectConfluences()
	a.ComputeHierarchy()

	return &Input{Network: n, Orders: orders, Blocks: a}
}

func findingTypes(findings []Finding) []FindingType {
	out := make([]FindingType, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Type)
	}
	return out
}

func hasFinding(findings []Finding, findingType FindingType) bool {
	for _, f := range findings {
		if f.Type == findingType {
			return true
		}
	}
	return false
}

func TestValidate_CleanNetwork(t *testing.T) {
	v := NewValidator(DefaultConfig(), logging.NewNopLogger())
	report := v.Validate(cleanInput(t))

	if !report.Valid() {
		t.Errorf("clean network reported errors: %v", findingTypes(report.Errors))
	}
	if len(report.Warnings) != 0 {
		t.Errorf("clean network reported warnings: %v", findingTypes(report.Warnings))
	}
}

func TestValidate_TopologyFirst(t *testing.T) {
	v := NewValidator(DefaultConfig(), logging.NewNopLogger())
	if v.Checks()[0].Name() != "topology" {
		t.Errorf("first check = %s, want topology", v.Checks()[0].Name())
	}
}

func TestTopology_CycleIsFatalButCompletes(t *testing.T) {
	n := buildNetwork(t, network.StrictTyping,
		[]string{"DP1", "DP2", "DP3"},
		[][2]string{{"DP1", "DP2"}, {"DP2", "DP3"}, {"DP3", "DP1"}})
	strahler.New().Analyze(n)

	v := NewValidator(DefaultConfig(), logging.NewNopLogger())
	report := v.Validate(&Input{Network: n})

	cycles := report.FindingsByType(CycleDetected)
	if len(cycles) != 1 {
		t.Fatalf("cycle findings = %d, want 1", len(cycles))
	}
	if cycles[0].ComponentID == "" {
		t.Error("cycle finding should name a member component")
	}
}

func TestTopology_DisconnectedAndEndpoints(t *testing.T) {
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "ZT1", "SW9"},
		[][2]string{{"MC1", "ZT1"}})
	strahler.New().Analyze(n)

	findings := NewTopologyCheck().Validate(&Input{Network: n})
	if !hasFinding(findings, Disconnected) {
		t.Error("expected a Disconnected finding for SW9")
	}
}

func TestHierarchy_StaleOrderDetected(t *testing.T) {
	input := cleanInput(t)
	comp, _ := input.Network.Component("ZT1")
	comp.Order = 99

	findings := NewHierarchyCheck().Validate(input)
	if !hasFinding(findings, StaleOrder) {
		t.Error("expected a StaleOrder finding after manual order tampering")
	}
}

func TestHierarchy_BlockFeedMonotonicity(t *testing.T) {
	// Two blocks where the upstream block sits at the same level as the
	// block it feeds.
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "F1", "MC2"},
		[][2]string{{"MC1", "F1"}})
	strahler.New().Analyze(n)

	a := blocks.NewAssembler(n, logging.NewNopLogger())
	five := 5
	b1 := a.CreateBlock(blocks.BlockTerminal, &five)
	b2 := a.CreateBlock(blocks.BlockDistribution, &five)
	a.AssignComponent("MC1", b1)
	a.AssignComponent("F1", b1)
	a.AssignComponent("MC2", b2)
	a.CreateJoint(b2, []string{"MC1"}, []string{"MC2"}, true)
	a.ComputeHierarchy()

	findings := NewHierarchyCheck().Validate(&Input{Network: n, Blocks: a})
	if !hasFinding(findings, InvalidHierarchyEdge) {
		t.Error("expected an InvalidHierarchyEdge finding for equal-level feed")
	}
}

func TestConnectionTypes_ForbiddenEdge(t *testing.T) {
	// canal -> field is not in the matrix.
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "F1"},
		[][2]string{{"MC1", "F1"}})

	findings := NewConnectionTypeCheck().Validate(&Input{Network: n})
	if len(findings) != 1 || findings[0].Type != ForbiddenConnection {
		t.Fatalf("findings = %v, want one ForbiddenConnection", findingTypes(findings))
	}
}

func TestCardinality_Violations(t *testing.T) {
	// SW1 has two outputs, F1 has two inputs.
	n := buildNetwork(t, network.StrictTyping,
		[]string{"DP1", "SW1", "ZT1", "F1"},
		[][2]string{
			{"DP1", "SW1"}, {"DP1", "ZT1"},
			{"SW1", "F1"}, {"ZT1", "F1"},
		})

	findings := NewCardinalityCheck().Validate(&Input{Network: n})
	ids := make(map[string]bool)
	for _, f := range findings {
		if f.Type != CardinalityViolation {
			t.Errorf("unexpected finding type %v", f.Type)
		}
		ids[f.ComponentID] = true
	}
	if !ids["F1"] {
		t.Error("field with two inputs should be flagged")
	}
	if ids["SW1"] || ids["ZT1"] {
		t.Errorf("single-feed control points should pass, flagged: %v", ids)
	}
}

func TestComponentTypes_LegacyFallbackSurfaces(t *testing.T) {
	// Under the legacy policy an unrecognized prefix is typed canal; the
	// cross-check against the canonical table flags it.
	n := buildNetwork(t, network.LegacyCanalTyping,
		[]string{"PUMP1", "ZT1"},
		[][2]string{{"PUMP1", "ZT1"}})

	findings := NewComponentTypeCheck().Validate(&Input{Network: n})
	if len(findings) != 1 || findings[0].ComponentID != "PUMP1" {
		t.Fatalf("findings = %+v, want one TypeMismatch for PUMP1", findings)
	}
}

func TestFieldReachability_UnreachableField(t *testing.T) {
	// F2 has no inbound path from any source.
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "ZT1", "F1", "F2", "DP9"},
		[][2]string{{"MC1", "ZT1"}, {"ZT1", "F1"}, {"F2", "DP9"}})

	findings := NewFieldReachabilityCheck(Warning).Validate(&Input{Network: n})
	if !hasFinding(findings, UnreachableField) {
		t.Error("expected an UnreachableField finding for F2")
	}
}

func TestFieldReachability_UncontrolledSupplyWarning(t *testing.T) {
	// F1 is fed, but no path passes a gate or smart meter.
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "DP1", "F1"},
		[][2]string{{"MC1", "DP1"}, {"DP1", "F1"}})

	findings := NewFieldReachabilityCheck(Warning).Validate(&Input{Network: n})
	if len(findings) != 1 || findings[0].Type != UncontrolledSupply {
		t.Fatalf("findings = %v, want one UncontrolledSupply", findingTypes(findings))
	}
	if findings[0].Severity != Warning {
		t.Errorf("severity = %v, want Warning", findings[0].Severity)
	}
}

func TestFieldReachability_SeverityEscalation(t *testing.T) {
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "DP1", "F1"},
		[][2]string{{"MC1", "DP1"}, {"DP1", "F1"}})

	findings := NewFieldReachabilityCheck(Error).Validate(&Input{Network: n})
	if len(findings) != 1 || findings[0].Severity != Error {
		t.Fatalf("escalated findings = %+v, want one Error", findings)
	}
}

func TestBlockStructure_BlockWithoutFieldsWarns(t *testing.T) {
	n := buildNetwork(t, network.StrictTyping,
		[]string{"MC1", "ZT1"},
		[][2]string{{"MC1", "ZT1"}})
	a := blocks.NewAssembler(n, logging.NewNopLogger())
	a.DetectBlocks()

	findings := NewBlockStructureCheck().Validate(&Input{Network: n, Blocks: a})
	if len(findings) != 1 || findings[0].Type != BlockWithoutFields {
		t.Fatalf("findings = %v, want one BlockWithoutFields", findingTypes(findings))
	}
	if findings[0].Severity != Warning {
		t.Error("a block without fields is advisory, not blocking")
	}
}

func TestBlockStructure_SkipsWithoutPartition(t *testing.T) {
	input := &Input{Network: network.New()}
	if findings := NewBlockStructureCheck().Validate(input); findings != nil {
		t.Errorf("check without partition = %v, want nil", findings)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	input := cleanInput(t)
	// Break a rule so the runs have findings to compare.
	input.Network.AddComponent("DP9", "dangling")
	strahler.New().Analyze(input.Network)

	v := NewValidator(DefaultConfig(), logging.NewNopLogger())
	first := v.Validate(input)
	second := v.Validate(input)

	if !reflect.DeepEqual(first.Errors, second.Errors) {
		t.Errorf("error lists differ between runs:\n%v\n%v", first.Errors, second.Errors)
	}
	if !reflect.DeepEqual(first.Warnings, second.Warnings) {
		t.Errorf("warning lists differ between runs:\n%v\n%v", first.Warnings, second.Warnings)
	}
	if first.ID == second.ID {
		t.Error("each run should carry a fresh report id")
	}
}

func TestReport_FindingsByType(t *testing.T) {
	report := &Report{
		Errors:   []Finding{{Type: CycleDetected}, {Type: StaleOrder}},
		Warnings: []Finding{{Type: UncontrolledSupply}},
	}
	if got := report.FindingsByType(StaleOrder); len(got) != 1 {
		t.Errorf("FindingsByType(StaleOrder) = %d findings, want 1", len(got))
	}
	if report.Valid() {
		t.Error("report with errors should not be valid")
	}
}
