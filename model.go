package labeltool

import (
	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/logging"
)

// Model is a label design: a list of objects on a template.
//
// The order of objects is the drawing order; the first object is at the
// back. Subscribers are notified after every change to the model or to
// any of its objects.
type Model struct {
	notifier
	objects  []Object
	cancel   map[Object]func()
	template *Template
	merge    *MergeSource
	rotate   bool
	modified bool
}

// NewModel creates an empty label design for the given template.
func NewModel(tpl *Template) *Model {
	return &Model{
		objects:  make([]Object, 0),
		cancel:   make(map[Object]func()),
		template: tpl,
	}
}

// Objects returns the objects in drawing order.
// The returned slice must not be modified.
func (m *Model) Objects() []Object {
	return m.objects
}

// Add appends an object at the front.
// Adding an object that is already part of the model does nothing.
func (m *Model) Add(o Object) {
	if _, ok := m.cancel[o]; ok {
		return
	}
	m.objects = append(m.objects, o)
	m.cancel[o] = o.Subscribe(m.changed)
	m.changed()
}

// Delete removes an object and releases its image data.
func (m *Model) Delete(o Object) {
	idx := m.indexOf(o)
	if idx < 0 {
		return
	}
	m.objects = append(m.objects[:idx], m.objects[idx+1:]...)
	m.cancel[o]()
	delete(m.cancel, o)
	o.release()
	m.changed()
}

// RaiseToTop moves an object to the front.
func (m *Model) RaiseToTop(o Object) {
	idx := m.indexOf(o)
	if idx < 0 || idx == len(m.objects)-1 {
		return
	}
	m.objects = append(m.objects[:idx], m.objects[idx+1:]...)
	m.objects = append(m.objects, o)
	m.changed()
}

// LowerToBottom moves an object to the back.
func (m *Model) LowerToBottom(o Object) {
	idx := m.indexOf(o)
	if idx <= 0 {
		return
	}
	m.objects = append(m.objects[:idx], m.objects[idx+1:]...)
	m.objects = append([]Object{o}, m.objects...)
	m.changed()
}

func (m *Model) indexOf(o Object) int {
	for i, x := range m.objects {
		if x == o {
			return i
		}
	}
	return -1
}

func (m *Model) Template() *Template {
	return m.template
}

func (m *Model) SetTemplate(tpl *Template) {
	if m.template == tpl {
		return
	}
	m.template = tpl
	m.changed()
}

// Rotate tells if the label is rotated by 90 degrees on the sheet.
func (m *Model) Rotate() bool {
	return m.rotate
}

func (m *Model) SetRotate(r bool) {
	if m.rotate == r {
		return
	}
	m.rotate = r
	m.changed()
}

// Merge returns the merge source, or nil for "no merge".
func (m *Model) Merge() *MergeSource {
	return m.merge
}

// SetMerge sets the merge source. Pass nil for "no merge".
func (m *Model) SetMerge(src *MergeSource) {
	if src.IsNone() {
		src = nil
	}
	if m.merge == nil && src == nil {
		return
	}
	if m.merge != nil && src != nil && *m.merge == *src {
		return
	}
	if src != nil {
		c := *src
		src = &c
	}
	m.merge = src
	m.changed()
}

// Modified tells if there were changes since the last call to
// ClearModified.
func (m *Model) Modified() bool {
	return m.modified
}

// ClearModified resets the modified flag, e.g. after saving.
func (m *Model) ClearModified() {
	m.modified = false
}

// W is the width of a single label, taking rotation into account.
func (m *Model) W() Distance {
	s := m.labelSize()
	if m.rotate {
		return s.H
	}
	return s.W
}

// H is the height of a single label, taking rotation into account.
func (m *Model) H() Distance {
	s := m.labelSize()
	if m.rotate {
		return s.W
	}
	return s.H
}

func (m *Model) labelSize() Size {
	if m.template == nil || len(m.template.Frames) == 0 {
		return Size{}
	}
	return m.template.Frames[0].Size()
}

// Draw paints all objects in order.
func (m *Model) Draw(p Painter, inEditor bool, rec Record) {
	for _, o := range m.objects {
		Draw(p, o, inEditor, rec)
	}
}

// Validate checks that the model has a usable template.
func (m *Model) Validate() error {
	if m.template == nil {
		return errors.NewValidationError("label has no template")
	}
	return m.template.Validate()
}

func (m *Model) changed() {
	m.modified = true
	logging.Debug("Label changed, %d objects", len(m.objects))
	m.emit()
}
