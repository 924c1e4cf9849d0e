package netgraph

// Component returns every node reachable from source, including source itself,
// in depth-first preorder with neighbors explored in ascending ID order.
// A node with no neighbors yields a singleton slice.
//
// The visited set is local to the call; no traversal state is retained on the
// graph between calls.
func (g *Graph) Component(source int) []int {
	g.checkNode(source)

	visited := make([]bool, g.n+1)
	component := make([]int, 0, 1)

	// Neighbors are pushed in descending order so the stack pops them
	// ascending, matching recursive preorder.
	stack := []int{source}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		component = append(component, node)

		neighbors := g.Neighbors(node)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i]] {
				stack = append(stack, neighbors[i])
			}
		}
	}
	return component
}

// Components partitions all nodes into connected components. Components are
// ordered by their lowest node ID, and each component is in the preorder
// produced by [Graph.Component]. Every node appears in exactly one component.
func (g *Graph) Components() [][]int {
	seen := make([]bool, g.n+1)
	var components [][]int
	for i := 1; i <= g.n; i++ {
		if seen[i] {
			continue
		}
		component := g.Component(i)
		for _, node := range component {
			seen[node] = true
		}
		components = append(components, component)
	}
	return components
}
