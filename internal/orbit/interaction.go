package orbit

type hoverState struct {
	body     *Body
	previous Color
}

// restore puts back the color the hovered body had before it was hovered.
func (h *hoverState) restore() {
	if h.body != nil {
		h.body.Color = h.previous
	}
}

// HoverChange reports a hover transition from one tick or hover check.
type HoverChange struct {
	Changed  bool
	From, To *Body
}

// Hovered returns the body under the pointer, or nil.
func (s *Session) Hovered() *Body { return s.hover.body }

// HoveredItem returns the item of the hovered body, or nil.
func (s *Session) HoveredItem() *Item {
	if s.hover.body == nil {
		return nil
	}
	return s.nodes.Item(s.hover.body.ID)
}

// PointerMove records the pointer position on a width x height surface.
// It takes effect on the next hover check.
func (s *Session) PointerMove(x, y, width, height float64) {
	s.pointer = ToNDC(x, y, width, height)
}

// SetPointer records a pointer position already in normalized device coordinates.
func (s *Session) SetPointer(ndc Vec2) { s.pointer = ndc }

// Intersections returns every hit under the pointer, grouped by body group in
// scene order and nearest first within a group.
func (s *Session) Intersections() []Hit {
	if s.picker == nil {
		return nil
	}
	var hits []Hit
	for _, g := range s.groups {
		hits = append(hits, s.picker.Intersect(s.pointer, g)...)
	}
	return hits
}

// HoverCheck updates the hovered body from the first hit under the pointer.
// A first hit without an item, such as a path, leaves the hover state as is.
func (s *Session) HoverCheck() HoverChange {
	hits := s.Intersections()
	if len(hits) == 0 {
		prev := s.hover.body
		s.hover.restore()
		s.hover = hoverState{}
		if prev != nil {
			s.log.Debug("hover cleared", "item", s.nodes.Item(prev.ID).Label())
		}
		return HoverChange{Changed: prev != nil, From: prev}
	}

	first := hits[0]
	item := s.nodes.Item(first.Node)
	if item == nil || (s.hover.body != nil && s.hover.body.ID == first.Node) {
		return HoverChange{}
	}
	body := s.bodyByID(first.Node)
	if body == nil {
		return HoverChange{}
	}

	prev := s.hover.body
	s.hover.restore()
	s.hover = hoverState{body: body, previous: body.Color}
	body.Color = body.HoverColor

	s.log.Debug("hover", "item", item.Label(), "color", body.HoverColor.Hex())
	if item.OnHover != nil {
		item.OnHover()
	}
	return HoverChange{Changed: true, From: prev, To: body}
}

// PointerRelease moves the pointer to the release position and activates the
// first hit's item. It reports whether an OnClick callback ran.
func (s *Session) PointerRelease(x, y, width, height float64) bool {
	s.PointerMove(x, y, width, height)
	return s.Activate()
}

// Activate runs OnClick for the first hit under the current pointer.
func (s *Session) Activate() bool {
	hits := s.Intersections()
	if len(hits) == 0 {
		return false
	}
	item := s.nodes.Item(hits[0].Node)
	if item == nil || item.OnClick == nil {
		return false
	}
	s.log.Info("activate", "item", item.Label())
	item.OnClick()
	return true
}

func (s *Session) bodyByID(id NodeID) *Body {
	for _, g := range s.groups {
		if g.Body.ID == id {
			return g.Body
		}
	}
	if s.root != nil && s.root.Center != nil && s.root.Center.ID == id {
		return s.root.Center
	}
	return nil
}
