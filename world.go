package highlight

import "fmt"

// World is the scene the Highlighter works on: the camera, the viewport
// delivering pointer events, the loaded models and the clipping planes.
// The renderer reads the same objects to draw.
type World struct {
	camera   *Camera
	viewport *Viewport

	models  map[string]*Model
	order   []string
	clipper []*ClippingPlane
}

// NewWorld creates an empty world with no camera or viewport.
func NewWorld() *World {
	return &World{models: make(map[string]*Model)}
}

// SetCamera sets the camera used for picking and framing.
func (w *World) SetCamera(cam *Camera) {
	w.camera = cam
}

// Camera returns the current camera, or nil.
func (w *World) Camera() *Camera {
	return w.camera
}

// SetViewport sets the viewport that delivers pointer events.
func (w *World) SetViewport(v *Viewport) {
	w.viewport = v
}

// Viewport returns the bound viewport, or nil.
func (w *World) Viewport() *Viewport {
	return w.viewport
}

// AddModel adds a model. Model IDs and fragment IDs must be unique across
// the world.
func (w *World) AddModel(m *Model) error {
	if m == nil {
		panic("highlight: cannot add nil model")
	}
	if _, ok := w.models[m.ID]; ok {
		return fmt.Errorf("highlight: model %q already added", m.ID)
	}
	for _, f := range m.Fragments() {
		if w.Fragment(f.ID) != nil {
			return fmt.Errorf("highlight: fragment %q of model %q already in world", f.ID, m.ID)
		}
	}
	w.models[m.ID] = m
	w.order = append(w.order, m.ID)
	return nil
}

// RemoveModel removes a model and its fragments from picking.
func (w *World) RemoveModel(id string) {
	if _, ok := w.models[id]; !ok {
		return
	}
	delete(w.models, id)
	for i, mid := range w.order {
		if mid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			return
		}
	}
}

// Model returns the model with the given ID, or nil.
func (w *World) Model(id string) *Model {
	return w.models[id]
}

// Models returns the models in insertion order.
func (w *World) Models() []*Model {
	out := make([]*Model, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.models[id])
	}
	return out
}

// Fragment finds a fragment by ID across every model, or nil.
func (w *World) Fragment(id string) *Fragment {
	for _, mid := range w.order {
		if f := w.models[mid].Fragment(id); f != nil {
			return f
		}
	}
	return nil
}

// Fragments returns every fragment, model by model, in insertion order.
func (w *World) Fragments() []*Fragment {
	var out []*Fragment
	for _, id := range w.order {
		out = append(out, w.models[id].Fragments()...)
	}
	return out
}

// AddClippingPlane adds a section plane.
func (w *World) AddClippingPlane(p *ClippingPlane) {
	w.clipper = append(w.clipper, p)
}

// RemoveClippingPlane removes a section plane.
func (w *World) RemoveClippingPlane(p *ClippingPlane) {
	for i, c := range w.clipper {
		if c == p {
			w.clipper = append(w.clipper[:i], w.clipper[i+1:]...)
			return
		}
	}
}

// ClippingPlanes returns every section plane, enabled or not. The returned
// slice MUST NOT be mutated.
func (w *World) ClippingPlanes() []*ClippingPlane {
	return w.clipper
}

// ActivePlanes returns the planes of every enabled section plane.
func (w *World) ActivePlanes() []Plane {
	var planes []Plane
	for _, c := range w.clipper {
		if c.Enabled {
			planes = append(planes, c.Plane)
		}
	}
	return planes
}

// FillMeshes returns the cross-sections of every enabled section plane.
func (w *World) FillMeshes() []*FillMesh {
	var fills []*FillMesh
	for _, c := range w.clipper {
		if c.Enabled {
			fills = append(fills, c.fills...)
		}
	}
	return fills
}

// Candidates returns every pickable surface: all fragments followed by the
// fills of enabled clipping planes, so sections stay selectable.
func (w *World) Candidates() []Surface {
	frags := w.Fragments()
	fills := w.FillMeshes()
	out := make([]Surface, 0, len(frags)+len(fills))
	for _, f := range frags {
		out = append(out, f)
	}
	for _, f := range fills {
		out = append(out, f)
	}
	return out
}
