package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID on an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
}

// HasVertex reports whether id is present. Empty id → false.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to and returns its ID.
// Missing endpoints are added.
//
// Validation (in order):
//  1. from, to non-empty (ErrEmptyVertexID).
//  2. weight == 0 unless the graph is weighted (ErrBadWeight).
//  3. from != to unless loops are allowed (ErrLoopNotAllowed).
//  4. no EdgeOption unless mixed edges are allowed (ErrMixedEdgesNotAllowed).
//  5. no existing from→to edge unless multi-edges are allowed (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.pairs[[2]string{from, to}] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	g.pairs[[2]string{from, to}]++

	// Mirror undirected
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
		g.pairs[[2]string{to, from}]++
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges answer in both directions.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[[2]string{from, to}] > 0
}

// Neighbors returns the edges traversable from id, in insertion order.
//
// Directed edges appear only under their From vertex; undirected edges under
// both endpoints (use Edge.Other to find the far side); self-loops once.
// The returned slice is a copy; the *Edge values are shared and read-only.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]*Edge(nil), g.adjacency[id]...), nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// MixedEdges reports whether per-edge direction overrides are allowed.
func (g *Graph) MixedEdges() bool { return g.allowMixed }
