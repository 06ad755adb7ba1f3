package ehc

import "testing"

type fakeOp string

func (o fakeOp) Name() string             { return string(o) }
func (o fakeOp) Applicable(s State) bool  { return true }
func (o fakeOp) Apply(s State) State      { return s }

type fakeState string

func (s fakeState) Key() string { return string(s) }

func TestNode(t *testing.T) {
	t.Run("root has no parent and empty solution", func(t *testing.T) {
		root := MakeRoot(fakeState("s0"))
		if !root.IsRoot() {
			t.Error("expected IsRoot() on a freshly made root")
		}
		if len(root.ExtractSolution()) != 0 {
			t.Error("expected empty solution from the root")
		}
	})

	t.Run("child chain extracts in order", func(t *testing.T) {
		root := MakeRoot(fakeState("s0"))
		n1 := MakeChild(root, fakeOp("op1"), fakeState("s1"))
		n2 := MakeChild(n1, fakeOp("op2"), fakeState("s2"))
		n3 := MakeChild(n2, fakeOp("op3"), fakeState("s3"))

		if n3.IsRoot() {
			t.Error("n3 should not be root")
		}
		if n3.Depth != 3 {
			t.Errorf("expected depth 3, got %d", n3.Depth)
		}

		plan := n3.ExtractSolution()
		want := []string{"op1", "op2", "op3"}
		if len(plan) != len(want) {
			t.Fatalf("expected %d operators, got %d", len(want), len(plan))
		}
		for i, op := range plan {
			if op.Name() != want[i] {
				t.Errorf("plan[%d] = %s, want %s", i, op.Name(), want[i])
			}
		}
	})
}
