package preview

import (
	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/logging"
)

// Preview keeps a scene up to date with a template and rotation.
//
// Every change clears the scene and builds it again; subscribers are
// called with the new scene.
type Preview struct {
	template *lt.Template
	rotate   bool
	scene    *Scene
	subs     []func(*Scene)
	detach   func()
}

// New creates a preview without a template.
func New() *Preview {
	return &Preview{
		scene: Build(nil, false),
		subs:  make([]func(*Scene), 0),
	}
}

// Scene returns the current scene.
func (p *Preview) Scene() *Scene {
	return p.scene
}

// OnUpdate registers fn to be called after the scene was rebuilt.
func (p *Preview) OnUpdate(fn func(*Scene)) {
	p.subs = append(p.subs, fn)
}

func (p *Preview) SetTemplate(tpl *lt.Template) {
	p.template = tpl
	p.update()
}

func (p *Preview) SetRotate(rotate bool) {
	p.rotate = rotate
	p.update()
}

// Attach follows the template and rotation of a label.
// It replaces any label that was attached before.
func (p *Preview) Attach(m *lt.Model) {
	p.Detach()

	sync := func() {
		if m.Template() == p.template && m.Rotate() == p.rotate {
			return
		}
		p.template = m.Template()
		p.rotate = m.Rotate()
		p.update()
	}
	p.detach = m.Subscribe(sync)

	p.template = m.Template()
	p.rotate = m.Rotate()
	p.update()
}

// Detach stops following the attached label.
func (p *Preview) Detach() {
	if p.detach != nil {
		p.detach()
		p.detach = nil
	}
}

func (p *Preview) update() {
	p.scene = Build(p.template, p.rotate)
	if p.template != nil {
		logging.Debug("Preview for %q with %d items", p.template.Name(), len(p.scene.Items))
	}
	for _, fn := range p.subs {
		fn(p.scene)
	}
}
