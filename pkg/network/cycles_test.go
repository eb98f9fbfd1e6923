package network

import "testing"

func TestHasCycle_AcyclicGraph(t *testing.T) {
	n := buildNetwork(t,
		[]string{"MC1", "DP1", "F1", "F2"},
		[][2]string{{"MC1", "DP1"}, {"DP1", "F1"}, {"DP1", "F2"}})

	if id, found := n.HasCycle(); found {
		t.Errorf("acyclic graph reported cycle at %s", id)
	}
}

func TestHasCycle_ThreeNodeCycle(t *testing.T) {
	n := buildNetwork(t,
		[]string{"MC1", "DP1", "DP2"},
		[][2]string{{"MC1", "DP1"}, {"DP1", "DP2"}, {"DP2", "MC1"}})

	id, found := n.HasCycle()
	if !found {
		t.Fatal("3-node cycle not detected")
	}
	if id != "MC1" && id != "DP1" && id != "DP2" {
		t.Errorf("reported cycle member %s is not part of the cycle", id)
	}
}

func TestHasCycle_CycleBehindChain(t *testing.T) {
	// MC1 -> DP1 -> DP2 -> DP1
	n := buildNetwork(t,
		[]string{"MC1", "DP1", "DP2"},
		[][2]string{{"MC1", "DP1"}, {"DP1", "DP2"}, {"DP2", "DP1"}})

	if _, found := n.HasCycle(); !found {
		t.Error("cycle reachable only through a chain not detected")
	}
}

func TestHasCycle_DisconnectedRegions(t *testing.T) {
	// An acyclic region plus a separate cyclic one.
	n := buildNetwork(t,
		[]string{"MC1", "F1", "DP1", "DP2"},
		[][2]string{{"MC1", "F1"}, {"DP1", "DP2"}, {"DP2", "DP1"}})

	if _, found := n.HasCycle(); !found {
		t.Error("cycle in disconnected region not detected")
	}
}

func TestHasCycle_EmptyNetwork(t *testing.T) {
	n := New()
	if id, found := n.HasCycle(); found {
		t.Errorf("empty network reported cycle at %s", id)
	}
}

func TestHasCycle_DiamondIsNotCycle(t *testing.T) {
	n := buildNetwork(t,
		[]string{"MC1", "DP1", "DP2", "F1"},
		[][2]string{{"MC1", "DP1"}, {"MC1", "DP2"}, {"DP1", "F1"}, {"DP2", "F1"}})

	if id, found := n.HasCycle(); found {
		t.Errorf("diamond DAG reported cycle at %s", id)
	}
}
