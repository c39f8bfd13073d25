package harmony

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type Node struct {
	Path  string
	Kind  string
	X, Y  int
	Attrs map[string]string
	// Columns maps a linked attribute to its column.
	Columns map[string]string
}

type Link struct {
	Src     string
	SrcPort int
	Dst     string
	DstPort int
}

// Keyframe is one recorded column key. Path columns fill X, Y and Z,
// Bezier columns fill Value and Interp.
type Keyframe struct {
	Frame   int
	X, Y, Z float64
	Value   float64
	Interp  string
}

type Column struct {
	Name string
	Kind string
	Keys []Keyframe
}

// MemoryGraph records every call in memory. It backs dry runs and tests.
type MemoryGraph struct {
	Nodes   map[string]*Node
	Links   []Link
	Columns map[string]*Column
	// Refuse lists node and column names whose creation fails.
	Refuse map[string]bool

	nodeOrder   []string
	columnOrder []string
}

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		Nodes:   map[string]*Node{},
		Columns: map[string]*Column{},
		Refuse:  map[string]bool{},
	}
}

func (m *MemoryGraph) CreateGroupNode(parent, name, kind string, x, y, z int) (string, bool) {
	path := parent + "/" + name
	if name == "" || m.Refuse[name] || m.Nodes[path] != nil {
		return "", false
	}
	m.Nodes[path] = &Node{
		Path:    path,
		Kind:    kind,
		Attrs:   map[string]string{},
		Columns: map[string]string{},
	}
	m.nodeOrder = append(m.nodeOrder, path)
	return path, true
}

func (m *MemoryGraph) SetPosition(node string, x, y int) {
	if n := m.Nodes[node]; n != nil {
		n.X, n.Y = x, y
	}
}

func (m *MemoryGraph) LinkNodes(src string, srcPort int, dst string, dstPort int) {
	m.Links = append(m.Links, Link{Src: src, SrcPort: srcPort, Dst: dst, DstPort: dstPort})
}

func (m *MemoryGraph) SetAttribute(node, attr string, frame int, value string) {
	if n := m.Nodes[node]; n != nil {
		n.Attrs[attr] = value
	}
}

func (m *MemoryGraph) CreateCurve(name, kind string) bool {
	if name == "" || m.Refuse[name] || m.Columns[name] != nil {
		return false
	}
	m.Columns[name] = &Column{Name: name, Kind: kind}
	m.columnOrder = append(m.columnOrder, name)
	return true
}

func (m *MemoryGraph) AppendPathKeyframe(curve string, frame int, x, y, z, tx, ty, tz float64) {
	if c := m.Columns[curve]; c != nil {
		c.Keys = append(c.Keys, Keyframe{Frame: frame, X: x, Y: y, Z: z})
	}
}

func (m *MemoryGraph) AppendCurveKeyframe(curve string, frame int, value, inX, inY, outX, outY float64, constSeg bool, interp string) {
	if c := m.Columns[curve]; c != nil {
		c.Keys = append(c.Keys, Keyframe{Frame: frame, Value: value, Interp: interp})
	}
}

func (m *MemoryGraph) CurveKind(name string) (string, bool) {
	c := m.Columns[name]
	if c == nil {
		return "", false
	}
	return c.Kind, true
}

func (m *MemoryGraph) LinkAttributeToCurve(node, attr, curve string) {
	if n := m.Nodes[node]; n != nil {
		n.Columns[attr] = curve
	}
}

// Summary prints the recorded nodes and columns as tables.
func (m *MemoryGraph) Summary(w io.Writer) {
	if len(m.columnOrder) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"column", "type", "keyframes"})
		for _, name := range m.columnOrder {
			c := m.Columns[name]
			table.Append([]string{c.Name, c.Kind, strconv.Itoa(len(c.Keys))})
		}
		table.Render()
	}

	if len(m.nodeOrder) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"node", "type", "position", "linked"})
		for _, path := range m.nodeOrder {
			n := m.Nodes[path]
			table.Append([]string{n.Path, n.Kind, fmt.Sprintf("%d,%d", n.X, n.Y), strconv.Itoa(len(n.Columns))})
		}
		table.Render()
	}
}
