package labeltool

import (
	"testing"
)

func TestAddAndDeleteNotify(t *testing.T) {
	m := NewModel(testTemplate())
	c := &counter{}
	m.Subscribe(c.inc)

	box := NewBox()
	m.Add(box)
	if c.n != 1 {
		t.Errorf("expected one notification for Add, got %v", c.n)
	}
	if !m.Modified() {
		t.Errorf("model should be modified after Add")
	}

	// adding twice does nothing
	m.Add(box)
	if len(m.Objects()) != 1 || c.n != 1 {
		t.Errorf("duplicate Add changed the model")
	}

	// object changes propagate
	m.ClearModified()
	box.SetLineWidth(Pt(5))
	if c.n != 2 || !m.Modified() {
		t.Errorf("object change not forwarded")
	}

	m.Delete(box)
	if len(m.Objects()) != 0 {
		t.Errorf("object not deleted")
	}
	if c.n != 3 {
		t.Errorf("expected notification for Delete, got %v", c.n)
	}

	// deleted objects are no longer observed
	box.SetLineWidth(Pt(7))
	if c.n != 3 {
		t.Errorf("deleted object still notifies the model")
	}
}

func TestDeleteReleasesImage(t *testing.T) {
	m := NewModel(testTemplate())
	img := NewImage(nil)
	img.SetSVG("logo.svg", []byte(testSVG))
	m.Add(img)

	m.Delete(img)
	if img.State() != ImageEmpty {
		t.Errorf("image data not released, state is %v", img.State())
	}
}

func TestZOrder(t *testing.T) {
	m := NewModel(testTemplate())
	a, b, c := NewBox(), NewEllipse(), NewLine()
	m.Add(a)
	m.Add(b)
	m.Add(c)

	m.RaiseToTop(a)
	assertOrder(t, m, b, c, a)

	m.LowerToBottom(a)
	assertOrder(t, m, a, b, c)

	n := &counter{}
	m.Subscribe(n.inc)
	// no-ops
	m.LowerToBottom(a)
	m.RaiseToTop(c)
	m.RaiseToTop(NewBox())
	if n.n != 0 {
		t.Errorf("no-op reordering notified %v times", n.n)
	}
}

func assertOrder(t *testing.T, m *Model, want ...Object) {
	t.Helper()
	got := m.Objects()
	if len(got) != len(want) {
		t.Fatalf("expected %v objects, got %v", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unexpected object at %v: %v", i, got[i].Kind())
		}
	}
}

func TestRotatedSize(t *testing.T) {
	m := NewModel(testTemplate())
	if m.W() != Pt(200) || m.H() != Pt(100) {
		t.Errorf("unexpected label size %v x %v", m.W(), m.H())
	}

	m.SetRotate(true)
	if m.W() != Pt(100) || m.H() != Pt(200) {
		t.Errorf("unexpected rotated size %v x %v", m.W(), m.H())
	}

	empty := NewModel(nil)
	if empty.W() != 0 || empty.H() != 0 {
		t.Errorf("model without template should have zero size")
	}
	if empty.Validate() == nil {
		t.Errorf("model without template should not validate")
	}
}

func TestSetMerge(t *testing.T) {
	m := NewModel(testTemplate())
	c := &counter{}
	m.Subscribe(c.inc)

	m.SetMerge(&MergeSource{Type: NoMerge})
	if m.Merge() != nil || c.n != 0 {
		t.Errorf("setting None should not change anything")
	}

	src := &MergeSource{Type: "Text/Comma", Source: "addresses.csv"}
	m.SetMerge(src)
	m.SetMerge(&MergeSource{Type: "Text/Comma", Source: "addresses.csv"})
	if c.n != 1 {
		t.Errorf("expected one notification, got %v", c.n)
	}

	// the model keeps its own copy
	src.Source = "other.csv"
	if m.Merge().Source != "addresses.csv" {
		t.Errorf("merge source was not copied")
	}

	m.SetMerge(nil)
	if m.Merge() != nil || c.n != 2 {
		t.Errorf("merge source not cleared")
	}
}

func TestModelDraw(t *testing.T) {
	m := NewModel(testTemplate())
	box := NewBox()
	box.SetPosition(Pt(10), Pt(20))
	m.Add(box)
	m.Add(NewLine())

	r := &recorder{}
	m.Draw(r, false, nil)
	if r.count("stroke") != 2 {
		t.Errorf("expected 2 strokes, got %v", r.calls)
	}
	if r.calls[0] != "save" || r.calls[1] != "translate 10 20" {
		t.Errorf("unexpected drawing sequence: %v", r.calls)
	}
}
