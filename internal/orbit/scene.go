package orbit

// SceneRoot holds every body group and the stationary center body.
type SceneRoot struct {
	Groups []*BodyGroup
	Center *Body
}

// Bodies lists all bodies in draw order: group bodies, then the center.
func (r *SceneRoot) Bodies() []*Body {
	bodies := make([]*Body, 0, len(r.Groups)+1)
	for _, g := range r.Groups {
		bodies = append(bodies, g.Body)
	}
	if r.Center != nil {
		bodies = append(bodies, r.Center)
	}
	return bodies
}

// BuildScene replaces the session's scene with one group per item, in item
// order, plus the center body. Missing scale or importance is randomized.
func (s *Session) BuildScene(items []*Item) (*SceneRoot, []*BodyGroup) {
	s.nodes = NewNodeTable()
	s.factory = NewFactory(s.rng, s.nodes)
	s.hover = hoverState{}

	root := &SceneRoot{}
	groups := make([]*BodyGroup, 0, len(items))
	for _, item := range items {
		scale := s.cfg.MaxSize * s.fraction(item.Scale)
		radius := s.fraction(item.Importance)*s.cfg.MaxRadius + s.cfg.MinRadius

		body := s.factory.CreateRandomBody(item, scale, radius)
		g := &BodyGroup{Body: body, Path: s.factory.CreatePath(body)}
		root.Groups = append(root.Groups, g)
		groups = append(groups, g)
	}

	root.Center = s.factory.CreateBody(&Item{Name: "home"}, CenterColor, Vec3{}, Uniform(s.cfg.MaxSize))
	s.nodes.setRole(root.Center.ID, RoleCenter)

	s.root = root
	s.groups = groups
	s.maxRadiusSet = false

	s.log.Debug("scene built", "groups", len(groups), "nodes", s.nodes.Len())
	return root, groups
}

func (s *Session) fraction(v *float64) float64 {
	if v != nil {
		return *v
	}
	return s.rng.Float64()
}
