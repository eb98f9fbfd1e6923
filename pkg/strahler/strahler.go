// Package strahler assigns a Strahler-style hierarchy order to every
// component of an irrigation network. Orders grow only where multiple
// branches of equal maximal order converge, independent of component types
// or any assumed root.
package strahler

import (
	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// Analyzer computes per-component Strahler orders over a network. The zero
// value is not usable; create one with New.
type Analyzer struct {
	orders map[string]int
}

// New creates an analyzer with an empty memo table.
func New() *Analyzer {
	return &Analyzer{orders: make(map[string]int)}
}

// Analyze computes the Strahler order of every component in the network and
// stores it on each component's Order field. Computation is seeded from every
// component, not only sources, so isolated and mid-graph components are
// ordered too.
//
// On a cyclic graph, components on the cycle contribute a sentinel order of 0
// and the run completes instead of looping. That is a defensive fallback, not
// a correctness guarantee: the validator's independent cycle check is the
// authoritative signal, and results computed over a cycle must be treated as
// structurally invalid.
func (a *Analyzer) Analyze(net *network.Network) map[string]int {
	a.orders = make(map[string]int, net.Len())

	for _, id := range net.ComponentIDs() {
		a.compute(net, id)
	}

	for _, c := range net.Components() {
		c.Order = a.orders[c.ID]
	}

	result := make(map[string]int, len(a.orders))
	for id, order := range a.orders {
		result[id] = order
	}
	return result
}

// frame is one level of the iterative post-order reduction.
type frame struct {
	id          string
	next        int
	childOrders []int
}

// compute memoizes the order of rootID and everything reachable below it.
// An explicit frame stack replaces call recursion so deep chains cannot
// exhaust the goroutine stack.
func (a *Analyzer) compute(net *network.Network, rootID string) {
	if _, done := a.orders[rootID]; done {
		return
	}

	onPath := make(map[string]bool)
	stack := []frame{{id: rootID}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.next == 0 {
			if _, done := a.orders[f.id]; done {
				stack = stack[:len(stack)-1]
				continue
			}
			onPath[f.id] = true

			// Sinks anchor the recursion at order 1.
			if len(net.Children(f.id)) == 0 {
				a.orders[f.id] = 1
				delete(onPath, f.id)
				stack = stack[:len(stack)-1]
				continue
			}
		}

		children := net.Children(f.id)
		pushed := false
		for f.next < len(children) {
			child := children[f.next]

			if order, done := a.orders[child]; done {
				f.childOrders = append(f.childOrders, order)
				f.next++
				continue
			}
			if onPath[child] {
				// Cycle sentinel: contributes 0, never memoized.
				f.childOrders = append(f.childOrders, 0)
				f.next++
				continue
			}
			// f.next stays on this child; its memoized order is collected
			// when the frame resumes.
			stack = append(stack, frame{id: child})
			pushed = true
			break
		}
		if pushed {
			continue
		}

		a.orders[f.id] = combine(f.childOrders)
		delete(onPath, f.id)
		stack = stack[:len(stack)-1]
	}
}

// combine reduces child orders to the parent order: the maximum child order,
// incremented by one only when that maximum is attained by more than one
// child.
func combine(childOrders []int) int {
	if len(childOrders) == 0 {
		return 1
	}

	max, count := childOrders[0], 1
	for _, order := range childOrders[1:] {
		switch {
		case order > max:
			max, count = order, 1
		case order == max:
			count++
		}
	}
	if count > 1 {
		return max + 1
	}
	return max
}

// Orders returns the memoized order map from the last Analyze run.
func (a *Analyzer) Orders() map[string]int {
	return a.orders
}

// LevelsByOrder groups component ids by their computed order.
func (a *Analyzer) LevelsByOrder() map[int][]string {
	levels := make(map[int][]string)
	for id, order := range a.orders {
		levels[order] = append(levels[order], id)
	}
	return levels
}

// MaxOrder returns the maximum assigned order, or 0 when no components have
// been analyzed.
func (a *Analyzer) MaxOrder() int {
	max := 0
	for _, order := range a.orders {
		if order > max {
			max = order
		}
	}
	return max
}
