// Package walk turns a core.Graph, or anything else that lists the edges
// leaving a vertex, into lazily expanded path branches for the bestfirst
// kernel.
//
// A Branch is a path prefix from the start vertex. Its neighbors are loaded
// from the Source on the first call to Next, never earlier, and handed out
// one child at a time through a forward-only cursor.
package walk

import (
	"errors"
	"strings"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
)

// ErrNilSource is returned by Start when no Source is given.
var ErrNilSource = errors.New("walk: source is nil")

// Source lists the edges traversable from a vertex. *core.Graph satisfies it.
type Source interface {
	Neighbors(id string) ([]*core.Edge, error)
}

// Option configures the branches of one walk.
type Option func(*options)

type options struct {
	filter func(e *core.Edge) bool
}

// WithEdgeFilter skips every edge for which keep returns false. The filter
// runs while a branch expands, so pruned edges never reach the kernel.
func WithEdgeFilter(keep func(e *core.Edge) bool) Option {
	return func(o *options) {
		if keep != nil {
			o.filter = keep
		}
	}
}

// Branch is a path from the start vertex to Node(). It implements
// bestfirst.Branch[string].
//
// A Branch is not safe for concurrent use; distinct branches of one walk
// share only the read-only Source and options.
type Branch struct {
	src    Source
	opts   *options
	node   string
	parent *Branch
	edge   *core.Edge
	length int

	loaded    bool
	neighbors []*core.Edge
	cursor    int
}

// Start returns the zero-length branch at id. The Source is not queried yet.
func Start(src Source, id string, opts ...Option) (*Branch, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if id == "" {
		return nil, core.ErrEmptyVertexID
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Branch{src: src, opts: o, node: id}, nil
}

// Node returns the last vertex of the path.
func (b *Branch) Node() string { return b.node }

// Next returns the next child branch, or (nil, nil) once every edge leaving
// Node has been handed out. Errors from the Source are returned unchanged.
func (b *Branch) Next() (bestfirst.Branch[string], error) {
	if !b.loaded {
		nbs, err := b.src.Neighbors(b.node)
		if err != nil {
			return nil, err
		}
		b.neighbors = nbs
		b.loaded = true
	}
	for b.cursor < len(b.neighbors) {
		e := b.neighbors[b.cursor]
		b.cursor++
		if b.opts.filter != nil && !b.opts.filter(e) {
			continue
		}
		return b.child(e), nil
	}
	// drop the snapshot, the branch is exhausted
	b.neighbors = nil
	return nil, nil
}

func (b *Branch) child(e *core.Edge) *Branch {
	return &Branch{
		src:    b.src,
		opts:   b.opts,
		node:   e.Other(b.node),
		parent: b,
		edge:   e,
		length: b.length + 1,
	}
}

// Parent returns the branch this one extends, nil for the start branch.
func (b *Branch) Parent() *Branch { return b.parent }

// Edge returns the last edge of the path, nil for the start branch.
func (b *Branch) Edge() *core.Edge { return b.edge }

// Weight returns the weight of the last edge, 0 for the start branch.
func (b *Branch) Weight() int64 {
	if b.edge == nil {
		return 0
	}
	return b.edge.Weight
}

// Length returns the number of edges in the path.
func (b *Branch) Length() int { return b.length }

// Start returns the first vertex of the path.
func (b *Branch) Start() string {
	cur := b
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur.node
}

// Nodes returns the vertices of the path from start to Node.
func (b *Branch) Nodes() []string {
	out := make([]string, b.length+1)
	for cur, i := b, b.length; cur != nil; cur, i = cur.parent, i-1 {
		out[i] = cur.node
	}
	return out
}

// Edges returns the edges of the path from start to Node.
func (b *Branch) Edges() []*core.Edge {
	out := make([]*core.Edge, b.length)
	for cur, i := b, b.length-1; cur.parent != nil; cur, i = cur.parent, i-1 {
		out[i] = cur.edge
	}
	return out
}

// String renders the path as "A->B->C".
func (b *Branch) String() string {
	return strings.Join(b.Nodes(), "->")
}

// Of returns the *Branch behind a kernel branch produced by this package.
// ok is false for branches from another substrate.
func Of(b bestfirst.Branch[string]) (*Branch, bool) {
	wb, ok := b.(*Branch)
	return wb, ok
}
