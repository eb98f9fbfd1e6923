package network

// pathFrame is one level of the iterative path enumeration.
type pathFrame struct {
	id   string
	next int // index of the next child to explore
}

// AllPaths enumerates every simple path starting at startID. If endID is
// non-empty, only paths terminating exactly at endID are returned; otherwise
// paths terminate at sink components. The visited set is per-path, so dense
// DAGs can yield exponentially many paths; callers needing scale must bound
// branching or depth.
//
// An explicit frame stack is used instead of call recursion so traversal
// depth is limited only by available heap.
func (n *Network) AllPaths(startID, endID string) [][]string {
	if _, ok := n.components[startID]; !ok {
		return nil
	}

	paths := make([][]string, 0)
	path := make([]string, 0)
	onPath := make(map[string]bool)
	stack := []pathFrame{{id: startID}}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		if frame.next == 0 {
			path = append(path, frame.id)
			onPath[frame.id] = true

			terminal := false
			if endID != "" {
				terminal = frame.id == endID
			} else {
				terminal = len(n.components[frame.id].ConnectionsTo) == 0
			}
			if terminal {
				recorded := make([]string, len(path))
				copy(recorded, path)
				paths = append(paths, recorded)

				path = path[:len(path)-1]
				delete(onPath, frame.id)
				stack = stack[:len(stack)-1]
				continue
			}
		}

		children := n.components[frame.id].ConnectionsTo
		advanced := false
		for frame.next < len(children) {
			child := children[frame.next]
			frame.next++
			if onPath[child] {
				continue
			}
			stack = append(stack, pathFrame{id: child})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// All children explored; unwind this frame.
		path = path[:len(path)-1]
		delete(onPath, frame.id)
		stack = stack[:len(stack)-1]
	}

	return paths
}
