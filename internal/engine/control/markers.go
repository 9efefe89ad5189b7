package control

// Marker ties a pickable scene entity to a pose-buffer joint. Markers with
// Draggable false are listed for display and debugging but never routed to a
// write operation.
type Marker struct {
	ID         string
	JointIndex int
	JointName  string
	Draggable  bool
}

// MarkerRegistry maps marker ids to joint indices for one rig-setup session;
// it is discarded on rig teardown.
type MarkerRegistry struct {
	byID  map[string]Marker
	order []string
}

// NewMarkerRegistry returns an empty registry.
func NewMarkerRegistry() *MarkerRegistry {
	return &MarkerRegistry{byID: make(map[string]Marker)}
}

// Register adds or replaces a marker.
func (r *MarkerRegistry) Register(id string, jointIndex int, jointName string, draggable bool) {
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = Marker{ID: id, JointIndex: jointIndex, JointName: jointName, Draggable: draggable}
}

// Lookup returns the marker for an id.
func (r *MarkerRegistry) Lookup(id string) (Marker, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// DragTarget resolves a marker id to its joint index, refusing markers that
// are not draggable.
func (r *MarkerRegistry) DragTarget(id string) (int, bool) {
	m, ok := r.byID[id]
	if !ok || !m.Draggable {
		return 0, false
	}
	return m.JointIndex, true
}

// Markers returns all markers in registration order.
func (r *MarkerRegistry) Markers() []Marker {
	out := make([]Marker, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
