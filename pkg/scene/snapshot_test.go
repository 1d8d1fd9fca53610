package scene

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshot_TreeAndIDs(t *testing.T) {
	root := NewGroup(0, 0)
	inner := NewGroup(10, 10)
	inner.Append(whiteLine(4, 1, 0, 0))
	root.Append(whiteLine(1, 4, 0, 0))
	root.Append(inner)

	got := Snapshot(root)
	want := &SnapshotNode{
		ID:     "Group#0",
		Type:   "Group",
		Bounds: [4]int{0, 0, 14, 11},
		Children: []*SnapshotNode{
			{ID: "TileGrid#0", Type: "TileGrid", Bounds: [4]int{0, 0, 1, 4}},
			{
				ID:     "Group#1",
				Type:   "Group",
				Bounds: [4]int{10, 10, 14, 11},
				Children: []*SnapshotNode{
					{ID: "TileGrid#1", Type: "TileGrid", Bounds: [4]int{0, 0, 4, 1}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if d := got.Diff(want); d != "" {
		t.Errorf("Diff of equal snapshots should be empty, got %s", d)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	root := NewGroup(0, 0)
	root.Append(whiteLine(2, 2, 1, 1))

	data, err := Snapshot(root).JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded SnapshotNode
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("snapshot JSON does not decode: %v", err)
	}
	if len(decoded.Children) != 1 || decoded.Children[0].Bounds != [4]int{1, 1, 3, 3} {
		t.Errorf("decoded snapshot = %+v", decoded)
	}
}

func TestSnapshot_Nil(t *testing.T) {
	if Snapshot(nil) != nil {
		t.Error("Snapshot(nil) should be nil")
	}
}
