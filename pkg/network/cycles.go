package network

// DFS colors for cycle detection.
const (
	white = 0 // unvisited
	gray  = 1 // on the active traversal path
	black = 2 // fully explored
)

// HasCycle checks the graph for a directed cycle using DFS with three-color
// marking. It returns the id of a component on the first detected cycle, or
// ("", false) when the graph is acyclic. Every component is used as a DFS
// root so disconnected regions are covered.
//
// The traversal keeps an explicit frame stack; the gray set doubles as the
// recursion-stack membership check.
func (n *Network) HasCycle() (string, bool) {
	color := make(map[string]int, len(n.components))

	type frame struct {
		id   string
		next int
	}

	for _, rootID := range n.ids {
		if color[rootID] != white {
			continue
		}

		stack := []frame{{id: rootID}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next == 0 {
				color[f.id] = gray
			}

			children := n.components[f.id].ConnectionsTo
			advanced := false
			for f.next < len(children) {
				child := children[f.next]
				f.next++
				switch color[child] {
				case gray:
					// Back edge: child is on the active path.
					return child, true
				case white:
					stack = append(stack, frame{id: child})
					advanced = true
				}
				if advanced {
					break
				}
			}
			if advanced {
				continue
			}

			color[f.id] = black
			stack = stack[:len(stack)-1]
		}
	}

	return "", false
}
