// Package graphfile loads weighted graphs (and optional A* estimates) from
// YAML documents:
//
//	directed: true
//	vertices: [A, B]          # optional, for isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 3}
//	heuristic: {A: 2, B: 0}   # optional
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bestfirst/astar"
	"github.com/katalvlaran/bestfirst/core"
)

var (
	// ErrParse wraps malformed YAML and unknown fields.
	ErrParse = errors.New("graphfile: parse")
	// ErrInvalid wraps documents that parse but describe an impossible graph.
	ErrInvalid = errors.New("graphfile: invalid graph")
)

// Edge is one edge entry.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
	// Directed overrides the document default for this edge.
	Directed *bool `yaml:"directed,omitempty"`
}

// File is a parsed graph document.
type File struct {
	Directed  bool             `yaml:"directed"`
	Multi     bool             `yaml:"multi_edges"`
	Loops     bool             `yaml:"loops"`
	Vertices  []string         `yaml:"vertices"`
	Edges     []Edge           `yaml:"edges"`
	Estimates map[string]int64 `yaml:"heuristic"`
}

// Load reads and parses the document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &f, nil
}

// Graph builds a weighted core.Graph from the document.
func (f *File) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithWeighted(), core.WithDirected(f.Directed)}
	mixed := false
	for _, e := range f.Edges {
		if e.Directed != nil {
			mixed = true
			break
		}
	}
	if mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	if f.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrInvalid, v, err)
		}
	}
	for i, e := range f.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %w", ErrInvalid, i, e.From, e.To, err)
		}
	}
	for v := range f.Estimates {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: heuristic names unknown vertex %q", ErrInvalid, v)
		}
	}
	return g, nil
}

// Heuristic returns the document's estimates as an A* heuristic. Vertices
// without an estimate get 0; a document without estimates yields astar.Zero.
func (f *File) Heuristic() astar.Heuristic {
	if len(f.Estimates) == 0 {
		return astar.Zero
	}
	est := make(map[string]int64, len(f.Estimates))
	for k, v := range f.Estimates {
		est[k] = v
	}
	return func(id string) int64 { return est[id] }
}
