package scene

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Describer is implemented by nodes that expose extra properties in snapshots.
type Describer interface {
	Describe() map[string]any
}

// SnapshotNode is a serializable view of a scene node.
type SnapshotNode struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Bounds   [4]int          `json:"bounds"`
	Props    map[string]any  `json:"props,omitempty"`
	Children []*SnapshotNode `json:"children,omitempty"`
}

// Snapshot captures root and its descendants. IDs take the form "Type#N" and
// are stable for a given tree shape.
func Snapshot(root Node) *SnapshotNode {
	if root == nil {
		return nil
	}
	return captureNode(root, &typeCounter{})
}

// JSON returns the indented JSON form of the snapshot.
func (s *SnapshotNode) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Diff returns a human readable diff between s and other, empty when equal.
func (s *SnapshotNode) Diff(other *SnapshotNode) string {
	return cmp.Diff(other, s)
}

// typeCounter assigns stable IDs like "TileGrid#0", "TileGrid#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(node Node, counter *typeCounter) *SnapshotNode {
	typeName := nodeTypeName(node)
	b := node.Bounds()
	sn := &SnapshotNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Bounds: [4]int{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
	}
	if d, ok := node.(Describer); ok {
		if props := d.Describe(); len(props) > 0 {
			sn.Props = props
		}
	}
	if visitor, ok := node.(ChildVisitor); ok {
		visitor.VisitChildren(func(child Node) {
			sn.Children = append(sn.Children, captureNode(child, counter))
		})
	}
	return sn
}

func nodeTypeName(node Node) string {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
