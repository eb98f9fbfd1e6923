package strahler

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// randomDAG builds an acyclic network of size nodes: edges only ever point
// from a lower index to a higher one.
func randomDAG(seed int64, nodes int) *network.Network {
	rng := rand.New(rand.NewSource(seed))
	n := network.New()
	ids := make([]string, nodes)
	for i := 0; i < nodes; i++ {
		ids[i] = "DP" + itoa(i)
		n.AddComponent(ids[i], "")
	}
	for i := 0; i < nodes; i++ {
		for j := i + 1; j < nodes; j++ {
			if rng.Intn(3) == 0 {
				n.AddConnection(ids[i], ids[j])
			}
		}
	}
	return n
}

// TestStrahlerLaws verifies the algebraic properties of the order assignment
// over randomly generated DAGs.
func TestStrahlerLaws(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: every sink of an acyclic graph has order exactly 1
	properties.Property("sinks have order 1", prop.ForAll(
		func(seed int64, nodes int) bool {
			n := randomDAG(seed, nodes)
			orders := New().Analyze(n)
			for _, id := range n.SinkNodes() {
				if orders[id] != 1 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 12),
	))

	// Property 2: each order equals max(child orders), incremented only
	// when the maximum occurs more than once among the children
	properties.Property("orders obey the confluence law", prop.ForAll(
		func(seed int64, nodes int) bool {
			n := randomDAG(seed, nodes)
			orders := New().Analyze(n)
			for _, id := range n.ComponentIDs() {
				children := n.Children(id)
				if len(children) == 0 {
					continue
				}
				max, count := 0, 0
				for _, child := range children {
					switch {
					case orders[child] > max:
						max, count = orders[child], 1
					case orders[child] == max:
						count++
					}
				}
				want := max
				if count > 1 {
					want = max + 1
				}
				if orders[id] != want {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 12),
	))

	// Property 3: max order is positive exactly when components exist
	properties.Property("max order is 0 iff the network is empty", prop.ForAll(
		func(seed int64, nodes int) bool {
			n := randomDAG(seed, nodes)
			a := New()
			a.Analyze(n)
			if nodes == 0 {
				return a.MaxOrder() == 0
			}
			return a.MaxOrder() >= 1
		},
		gen.Int64(),
		gen.IntRange(0, 12),
	))

	properties.TestingRun(t)
}
