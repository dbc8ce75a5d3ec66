package dag

// Graph is a collection of nodes and their dependencies, representing a DAG.
// It is built once and then only read; it is not safe for concurrent mutation.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order records node IDs in insertion order.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	// id is the unique identifier for the node.
	id string
	// deps holds the set of nodes that this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[string]*node
}
