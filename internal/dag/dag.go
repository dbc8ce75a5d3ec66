package dag

import (
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	g.order = append(g.order, id)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. An error is returned
// if either node does not exist or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// Dependencies returns the sorted IDs of the nodes that the given node depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.deps), nil
}

// Dependents returns the sorted IDs of the nodes that depend on the given node.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.dependents), nil
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, indicating the first node involved in the detected cycle.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search with three sets of nodes:
	// permanent: nodes that have been fully visited and are not part of a cycle.
	// temporary: nodes currently in the recursion stack for the current traversal.
	// unvisited: all other nodes.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("cycle detected involving node '%s'", n.id)
		}

		temporary[n.id] = true

		for _, id := range sortedKeys(n.dependents) {
			if err := visit(n.dependents[id]); err != nil {
				return err
			}
		}

		delete(temporary, n.id)
		permanent[n.id] = true

		return nil
	}

	for _, id := range g.order {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}

	return nil
}

// TopologicalOrder returns every node ID such that each node comes after all
// of its dependencies. Among nodes that are ready at the same time, the one
// added first wins, so the result is stable for a given insertion order.
func (g *Graph) TopologicalOrder() ([]string, error) {
	result := make([]string, 0, len(g.order))
	emitted := make(map[string]bool, len(g.order))

	for len(result) < len(g.order) {
		progressed := false
		for _, id := range g.order {
			if emitted[id] || !allEmitted(g.nodes[id].deps, emitted) {
				continue
			}
			emitted[id] = true
			result = append(result, id)
			progressed = true
			break
		}
		if !progressed {
			if err := g.DetectCycles(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("unable to order %d remaining node(s)", len(g.order)-len(result))
		}
	}

	return result, nil
}

func allEmitted(deps map[string]*node, emitted map[string]bool) bool {
	for id := range deps {
		if !emitted[id] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
