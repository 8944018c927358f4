// Package repr converts traversal results into a tagged representation tree
// that renders the same way as JSON, YAML or plain text.
//
// Convert accepts anything: graph types become node, relationship and path
// representations; maps, slices and iterators become maps and lists;
// numbers and booleans keep their kind; nil is the string "null"; any other
// value is rendered with fmt.
//
// A list carries the type of its first element, or string when it is empty.
// Nested slices become nested lists.
package repr

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Type tags a Representation.
type Type string

// Representation types.
const (
	TypeString       Type = "string"
	TypeNumber       Type = "number"
	TypeBoolean      Type = "boolean"
	TypeList         Type = "list"
	TypeMap          Type = "map"
	TypeNode         Type = "node"
	TypeRelationship Type = "relationship"
	TypePath         Type = "path"
)

// NodeID marks a string as a vertex ID so Convert renders it as a node.
type NodeID string

// Relationship is the payload of a relationship representation.
type Relationship struct {
	ID       string
	From     string
	To       string
	Weight   int64
	Directed bool
}

// PathValue is the payload of a path representation.
type PathValue struct {
	Nodes         []string
	Relationships []Relationship
}

// Representation is one node of the tree. Which fields are set depends on Type:
// scalars use Value, lists ElementType and Items, maps Entries, nodes ID,
// relationships Relationship and paths Path.
type Representation struct {
	Type Type

	Value        any
	ElementType  Type
	Items        []Representation
	Entries      map[string]Representation
	ID           string
	Relationship *Relationship
	Path         *PathValue
}

// String returns a string representation.
func String(s string) Representation { return Representation{Type: TypeString, Value: s} }

// Number returns a number representation; v should be int64, uint64 or float64.
func Number(v any) Representation { return Representation{Type: TypeNumber, Value: v} }

// Boolean returns a boolean representation.
func Boolean(b bool) Representation { return Representation{Type: TypeBoolean, Value: b} }

// Node returns a node representation for vertex id.
func Node(id string) Representation { return Representation{Type: TypeNode, ID: id} }

// Rel returns a relationship representation for e.
func Rel(e *core.Edge) Representation {
	r := relationshipOf(e)
	return Representation{Type: TypeRelationship, Relationship: &r}
}

// Path returns a path representation. edges may be shorter than nodes-1 for
// substrates that do not expose edges.
func Path(nodes []string, edges []*core.Edge) Representation {
	p := &PathValue{Nodes: slices.Clone(nodes), Relationships: make([]Relationship, 0, len(edges))}
	for _, e := range edges {
		p.Relationships = append(p.Relationships, relationshipOf(e))
	}
	return Representation{Type: TypePath, Path: p}
}

// List builds a list from already converted items.
func List(items []Representation) Representation {
	elem := TypeString
	if len(items) > 0 {
		elem = items[0].Type
	}
	return Representation{Type: TypeList, ElementType: elem, Items: items}
}

func relationshipOf(e *core.Edge) Relationship {
	return Relationship{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
}

// Convert maps v to its representation.
func Convert(v any) Representation {
	switch x := v.(type) {
	case nil:
		return String("null")
	case Representation:
		return x
	case *Representation:
		if x == nil {
			return String("null")
		}
		return *x
	case NodeID:
		return Node(string(x))
	case core.Vertex:
		return Node(x.ID)
	case *core.Vertex:
		if x == nil {
			return String("null")
		}
		return Node(x.ID)
	case core.Edge:
		return Rel(&x)
	case *core.Edge:
		if x == nil {
			return String("null")
		}
		return Rel(x)
	case *walk.Branch:
		if x == nil {
			return String("null")
		}
		return Path(x.Nodes(), x.Edges())
	case string:
		return String(x)
	case bool:
		return Boolean(x)
	case int:
		return Number(int64(x))
	case int8:
		return Number(int64(x))
	case int16:
		return Number(int64(x))
	case int32:
		return Number(int64(x))
	case int64:
		return Number(x)
	case uint:
		return Number(uint64(x))
	case uint8:
		return Number(uint64(x))
	case uint16:
		return Number(uint64(x))
	case uint32:
		return Number(uint64(x))
	case uint64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case iter.Seq[any]:
		var items []Representation
		for item := range x {
			items = append(items, Convert(item))
		}
		return List(items)
	case fmt.Stringer:
		return String(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List(nil)
		}
		items := make([]Representation, rv.Len())
		for i := range items {
			items[i] = Convert(rv.Index(i).Interface())
		}
		return List(items)
	case reflect.Map:
		entries := make(map[string]Representation, rv.Len())
		mi := rv.MapRange()
		for mi.Next() {
			entries[fmt.Sprint(mi.Key().Interface())] = Convert(mi.Value().Interface())
		}
		return Representation{Type: TypeMap, Entries: entries}
	case reflect.Pointer:
		if rv.IsNil() {
			return String("null")
		}
	}

	return String(fmt.Sprint(v))
}

// fields flattens r into plain maps and slices; encoders sort map keys, so
// the output is deterministic.
func (r Representation) fields() map[string]any {
	m := map[string]any{"type": string(r.Type)}
	switch r.Type {
	case TypeList:
		items := make([]any, len(r.Items))
		for i, it := range r.Items {
			items[i] = it.fields()
		}
		m["element_type"] = string(r.ElementType)
		m["items"] = items
	case TypeMap:
		entries := make(map[string]any, len(r.Entries))
		for k, e := range r.Entries {
			entries[k] = e.fields()
		}
		m["entries"] = entries
	case TypeNode:
		m["id"] = r.ID
	case TypeRelationship:
		for k, v := range relFields(r.Relationship) {
			m[k] = v
		}
	case TypePath:
		nodes := []string{}
		rels := []any{}
		if r.Path != nil {
			nodes = r.Path.Nodes
			for i := range r.Path.Relationships {
				rels = append(rels, relFields(&r.Path.Relationships[i]))
			}
		}
		if len(nodes) > 0 {
			m["start"] = nodes[0]
			m["end"] = nodes[len(nodes)-1]
		}
		m["length"] = max(len(nodes)-1, 0)
		m["nodes"] = nodes
		m["relationships"] = rels
	default:
		m["value"] = r.Value
	}
	return m
}

func relFields(rel *Relationship) map[string]any {
	if rel == nil {
		return map[string]any{}
	}
	return map[string]any{
		"id":       rel.ID,
		"from":     rel.From,
		"to":       rel.To,
		"weight":   rel.Weight,
		"directed": rel.Directed,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Representation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields())
}

// MarshalYAML implements yaml.Marshaler.
func (r Representation) MarshalYAML() (any, error) {
	return r.fields(), nil
}

// String renders r as compact text: scalars as their value, nodes as (id),
// relationships as [id:from->to w], paths as (A)-[e1]->(B), lists in
// brackets and maps as sorted key=value pairs.
func (r Representation) String() string {
	var sb strings.Builder
	r.writeText(&sb)
	return sb.String()
}

func (r Representation) writeText(sb *strings.Builder) {
	switch r.Type {
	case TypeList:
		sb.WriteByte('[')
		for i, it := range r.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			it.writeText(sb)
		}
		sb.WriteByte(']')
	case TypeMap:
		keys := make([]string, 0, len(r.Entries))
		for k := range r.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			r.Entries[k].writeText(sb)
		}
	case TypeNode:
		fmt.Fprintf(sb, "(%s)", r.ID)
	case TypeRelationship:
		if rel := r.Relationship; rel != nil {
			fmt.Fprintf(sb, "[%s:%s->%s %d]", rel.ID, rel.From, rel.To, rel.Weight)
		}
	case TypePath:
		if r.Path == nil {
			return
		}
		for i, n := range r.Path.Nodes {
			if i > 0 {
				if i-1 < len(r.Path.Relationships) {
					fmt.Fprintf(sb, "-[%s]->", r.Path.Relationships[i-1].ID)
				} else {
					sb.WriteString("-->")
				}
			}
			fmt.Fprintf(sb, "(%s)", n)
		}
	default:
		fmt.Fprint(sb, r.Value)
	}
}
