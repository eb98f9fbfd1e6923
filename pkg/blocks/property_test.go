package blocks

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// randomIrrigationNetwork builds a network of canals with randomly
// attached gates, smart meters and fields.
func randomIrrigationNetwork(seed int64, canals int) *network.Network {
	rng := rand.New(rand.NewSource(seed))
	n := network.New()

	for i := 0; i < canals; i++ {
		canal := fmt.Sprintf("MC%d", i)
		n.AddComponent(canal, "")

		devices := rng.Intn(3)
		for d := 0; d < devices; d++ {
			var device string
			if rng.Intn(2) == 0 {
				device = fmt.Sprintf("ZT%d_%d", i, d)
			} else {
				device = fmt.Sprintf("SW%d_%d", i, d)
			}
			n.AddComponent(device, "")
			n.AddConnection(canal, device)

			field := fmt.Sprintf("F%d_%d", i, d)
			n.AddComponent(field, "")
			n.AddConnection(device, field)
		}
	}

	// Cross-links between canal groups create shared fields.
	for i := 1; i < canals; i++ {
		if rng.Intn(2) == 0 {
			n.AddConnection(fmt.Sprintf("MC%d", i-1), fmt.Sprintf("MC%d", i))
		}
	}
	return n
}

// TestPartitionLaws verifies the block partition invariants over randomly
// generated networks.
func TestPartitionLaws(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: no component is owned by two blocks
	properties.Property("block component sets are pairwise disjoint", prop.ForAll(
		func(seed int64, canals int) bool {
			a := NewAssembler(randomIrrigationNetwork(seed, canals), logging.NewNopLogger())
			a.DetectBlocks()

			seen := make(map[string]bool)
			for _, b := range a.Blocks() {
				for _, compID := range b.Components() {
					if seen[compID] {
						return false
					}
					seen[compID] = true
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	// Property 2: the ownership index agrees with block membership
	properties.Property("ownership index matches block membership", prop.ForAll(
		func(seed int64, canals int) bool {
			a := NewAssembler(randomIrrigationNetwork(seed, canals), logging.NewNopLogger())
			a.DetectBlocks()
			a.DetectConfluences()

			for _, b := range a.Blocks() {
				for _, compID := range b.Components() {
					owner, ok := a.ComponentBlock(compID)
					if !ok || owner != b.ID {
						return false
					}
				}
			}
			return len(a.ValidateStructure()) == 0
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	// Property 3: hierarchy computation assigns a positive level everywhere
	properties.Property("every block receives a positive level", prop.ForAll(
		func(seed int64, canals int) bool {
			a := NewAssembler(randomIrrigationNetwork(seed, canals), logging.NewNopLogger())
			a.DetectBlocks()
			a.DetectConfluences()
			a.ComputeHierarchy()

			for _, b := range a.Blocks() {
				if b.Level < 1 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
