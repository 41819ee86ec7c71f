package orbit_test

import (
	"bytes"
	"log/slog"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/orbit"
)

const side = 1000.0

var _ = Describe("Session", func() {
	var (
		cam     *orbit.Camera
		session *orbit.Session
		logBuf  *bytes.Buffer
	)

	BeforeEach(func() {
		cam = orbit.NewCamera(1)
		logBuf = &bytes.Buffer{}
		session = orbit.New(orbit.DefaultConfig(), &orbit.RayPicker{Camera: cam},
			orbit.WithRand(rand.New(rand.NewSource(3))),
			orbit.WithLogger(slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		)
	})

	pointAt := func(g *orbit.BodyGroup) (float64, float64) {
		ndc, ok := cam.Project(g.WorldPosition())
		Expect(ok).To(BeTrue())
		return orbit.ToPixels(ndc, side, side)
	}

	Describe("BuildScene", func() {
		It("keeps item order and adds a stationary center", func() {
			items := []*orbit.Item{
				{Name: "mercury", Importance: orbit.Float(0.1)},
				{Name: "venus", Importance: orbit.Float(0.2)},
				{Name: "earth"},
			}
			root, groups := session.BuildScene(items)

			Expect(groups).To(HaveLen(3))
			Expect(root.Groups).To(Equal(groups))
			for i, g := range groups {
				Expect(session.Nodes().Item(g.Body.ID)).To(BeIdenticalTo(items[i]))
				Expect(session.Nodes().Item(g.Path.ID)).To(BeNil())
			}

			Expect(root.Center).NotTo(BeNil())
			Expect(root.Center.Position).To(Equal(orbit.Vec3{}))
			Expect(root.Center.Color).To(Equal(orbit.CenterColor))
			Expect(root.Center.Scale).To(Equal(orbit.Uniform(20)))
			info, ok := session.Nodes().Info(root.Center.ID)
			Expect(ok).To(BeTrue())
			Expect(info.Role).To(Equal(orbit.RoleCenter))
		})

		It("randomizes missing scale and importance within bounds", func() {
			items := make([]*orbit.Item, 50)
			for i := range items {
				items[i] = &orbit.Item{}
			}
			_, groups := session.BuildScene(items)

			for _, g := range groups {
				Expect(g.Body.Scale.X).To(BeNumerically(">=", 0))
				Expect(g.Body.Scale.X).To(BeNumerically("<=", 20))
				Expect(g.Body.Position.X).To(BeNumerically(">=", 500))
				Expect(g.Body.Position.X).To(BeNumerically("<", 4500))
				Expect(g.Body.Position.Y).To(Equal(g.Body.Position.X))
				Expect(g.Body.Position.Z).To(BeZero())
			}
		})

		It("drops hover state from the previous scene", func() {
			_, groups := session.BuildScene([]*orbit.Item{{Scale: orbit.Float(1), Importance: orbit.Float(0)}})
			x, y := pointAt(groups[0])
			session.PointerMove(x, y, side, side)
			session.HoverCheck()
			Expect(session.Hovered()).NotTo(BeNil())

			session.BuildScene(nil)
			Expect(session.Hovered()).To(BeNil())
			Expect(session.HoveredItem()).To(BeNil())
		})
	})

	Describe("frame loop", func() {
		It("freezes the hovered body and resumes it when the pointer leaves", func() {
			hovered := 0
			_, groups := session.BuildScene([]*orbit.Item{
				{Name: "a", Scale: orbit.Float(1), Importance: orbit.Float(0), OnHover: func() { hovered++ }},
			})
			x, y := pointAt(groups[0])
			session.PointerMove(x, y, side, side)

			delta := session.Tick(0)
			Expect(delta.Rotations).To(HaveLen(1))
			Expect(delta.Hover.Changed).To(BeTrue())
			Expect(hovered).To(Equal(1))

			angle := groups[0].Rotation
			for i := 0; i < 5; i++ {
				session.Tick(0)
			}
			Expect(groups[0].Rotation).To(Equal(angle))

			session.PointerMove(0, 0, side, side)
			session.Tick(0)
			Expect(session.Hovered()).To(BeNil())
			session.Tick(0)
			Expect(groups[0].Rotation).To(BeNumerically(">", angle))
			Expect(logBuf.String()).To(ContainSubstring("hover"))
		})

		It("activates a body under a release and logs it", func() {
			clicks := 0
			_, groups := session.BuildScene([]*orbit.Item{
				{Name: "jupiter", Scale: orbit.Float(1), Importance: orbit.Float(0.5), OnClick: func() { clicks++ }},
			})
			for i := 0; i < 30; i++ {
				session.Tick(0)
			}

			x, y := pointAt(groups[0])
			Expect(session.PointerRelease(x, y, side, side)).To(BeTrue())
			Expect(clicks).To(Equal(1))
			Expect(logBuf.String()).To(ContainSubstring("jupiter"))

			Expect(session.PointerRelease(1, 1, side, side)).To(BeFalse())
			Expect(clicks).To(Equal(1))
		})
	})

	It("keeps independent sessions apart", func() {
		other := orbit.New(orbit.DefaultConfig(), nil, orbit.WithRand(rand.New(rand.NewSource(3))))
		session.BuildScene([]*orbit.Item{{Importance: orbit.Float(1)}})
		other.BuildScene(nil)

		session.Tick(0)
		Expect(other.Groups()).To(BeEmpty())
		Expect(other.MaxRadius()).To(BeZero())
		Expect(session.MaxRadius()).To(BeNumerically(">", 0))
	})
})
