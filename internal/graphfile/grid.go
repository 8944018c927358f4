package graphfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bestfirst/gridgraph"
)

// Grid is a parsed grid document:
//
//	conn: 8              # 4 (default) or 8
//	land_threshold: 1    # default 1
//	cells:
//	  - [1, 0, 1]
//	  - [1, 1, 1]
type Grid struct {
	Conn          int     `yaml:"conn"`
	LandThreshold *int    `yaml:"land_threshold"`
	Cells         [][]int `yaml:"cells"`
}

// LoadGrid reads and parses the grid document at path.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid file: %w", err)
	}
	g, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseGrid decodes a grid document. Unknown fields are rejected.
func ParseGrid(data []byte) (*Grid, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var g Grid
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &g, nil
}

// GridGraph builds the gridgraph.GridGraph the document describes.
func (g *Grid) GridGraph() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	switch g.Conn {
	case 0, 4:
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%w: conn must be 4 or 8, got %d", ErrInvalid, g.Conn)
	}
	if g.LandThreshold != nil {
		opts.LandThreshold = *g.LandThreshold
	}
	gg, err := gridgraph.NewGridGraph(g.Cells, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return gg, nil
}
