package showcase_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
	"github.com/dimas-aryo/ornawheel/internal/input"
	"github.com/dimas-aryo/ornawheel/internal/showcase"
)

const dt = 1.0 / 60

func testRecords(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		records[i] = catalog.Record{
			ID:          i + 1,
			DisplayName: "Ornamen Uji",
			Specs:       map[catalog.SpecKey]string{catalog.SpecMaterial: "Kuningan"},
		}
	}
	return records
}

// idle feeds pointer-up samples for n frames.
func idle(s *showcase.State, n int) {
	for i := 0; i < n; i++ {
		s.Advance(dt, input.Sample{})
	}
}

// swipe presses at x and drags rightward by step pixels per frame.
func swipe(s *showcase.State, x float64, step float64, frames int) float64 {
	s.Advance(dt, input.Sample{Down: true, X: x, Y: 100})
	for i := 0; i < frames; i++ {
		x += step
		s.Advance(dt, input.Sample{Down: true, X: x, Y: 100})
	}
	return x
}

var _ = Describe("Showcase", func() {
	var scene *showcase.State

	BeforeEach(func() {
		var err error
		scene, err = showcase.New(testRecords(8), showcase.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("mounting", func() {
		It("rejects an empty catalog", func() {
			_, err := showcase.New(nil, showcase.DefaultOptions())
			Expect(err).To(MatchError(catalog.ErrEmptyCatalog))
		})

		It("fixes the wheel cardinality to the record count", func() {
			Expect(scene.LayoutConfig().Count).To(Equal(8))
			Expect(scene.Frame().Cards).To(HaveLen(8))
		})

		It("starts auto-playing with no selection", func() {
			Expect(scene.Controller().AutoPlaying()).To(BeTrue())
			_, ok := scene.SelectedRecord()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("rotation", func() {
		It("advances the wheel while idle", func() {
			before := scene.Controller().Angle()
			idle(scene, 30)
			Expect(scene.Controller().Angle()).To(BeNumerically(">", before))
		})

		It("maps a rightward swipe to a positive angle", func() {
			// A fresh scene has not auto-rotated yet; the first frames are
			// pure drag motion.
			swipe(scene, 100, 10, 20)
			Expect(scene.Controller().Angle()).To(BeNumerically(">", 0))
			Expect(scene.Controller().Dragging()).To(BeTrue())
		})

		It("keeps spinning from inertia after release", func() {
			x := swipe(scene, 100, 12, 20)
			scene.Advance(dt, input.Sample{Down: false, X: x, Y: 100})

			Expect(scene.Controller().Dragging()).To(BeFalse())
			Expect(scene.Controller().Velocity()).To(BeNumerically(">", 0))

			before := scene.Controller().Angle()
			idle(scene, 5)
			Expect(scene.Controller().Angle()).To(BeNumerically(">", before))
		})

		It("recomputes the layout every frame", func() {
			first := scene.Frame()
			idle(scene, 10)
			Expect(scene.Frame().Cards[0].Position).NotTo(Equal(first.Cards[0].Position))
		})
	})

	Describe("selection", func() {
		It("selects a record by id and stops auto-play", func() {
			scene.ToggleSelect(3)

			r, ok := scene.SelectedRecord()
			Expect(ok).To(BeTrue())
			Expect(r.ID).To(Equal(3))
			Expect(scene.Controller().AutoPlaying()).To(BeFalse())
		})

		It("toggles off when the same id is selected again", func() {
			scene.ToggleSelect(3)
			scene.ToggleSelect(3)
			Expect(scene.SelectedID()).To(BeZero())
		})

		It("switches selection between records", func() {
			scene.ToggleSelect(3)
			scene.ToggleSelect(5)
			Expect(scene.SelectedID()).To(Equal(5))
		})

		It("ignores ids outside the catalog", func() {
			scene.ToggleSelect(99)
			Expect(scene.SelectedID()).To(BeZero())
			Expect(scene.Controller().AutoPlaying()).To(BeTrue())
		})

		It("does not restore auto-play when cleared", func() {
			scene.ToggleSelect(3)
			scene.ClearSelection()
			Expect(scene.SelectedID()).To(BeZero())
			Expect(scene.Controller().AutoPlaying()).To(BeFalse())
		})
	})

	Describe("clicks", func() {
		It("selects through the hit tester", func() {
			scene.SetHitTester(func(x, y float64) (int, bool) { return 4, true })

			scene.Advance(dt, input.Sample{Down: true, X: 200, Y: 200})
			scene.Advance(dt, input.Sample{Down: false, X: 200, Y: 200})

			Expect(scene.SelectedID()).To(Equal(4))
		})

		It("ignores clicks that hit nothing", func() {
			scene.SetHitTester(func(x, y float64) (int, bool) { return 0, false })

			scene.Advance(dt, input.Sample{Down: true, X: 200, Y: 200})
			scene.Advance(dt, input.Sample{Down: false, X: 200, Y: 200})

			Expect(scene.SelectedID()).To(BeZero())
		})

		It("does not select at the end of a drag", func() {
			scene.SetHitTester(func(x, y float64) (int, bool) { return 4, true })

			x := swipe(scene, 100, 10, 10)
			scene.Advance(dt, input.Sample{Down: false, X: x, Y: 100})

			Expect(scene.SelectedID()).To(BeZero())
		})

		It("ignores clicks with no hit tester installed", func() {
			scene.Advance(dt, input.Sample{Down: true, X: 200, Y: 200})
			scene.Advance(dt, input.Sample{Down: false, X: 200, Y: 200})
			Expect(scene.SelectedID()).To(BeZero())
		})
	})

	Describe("records", func() {
		It("maps layout indices back to records", func() {
			r, ok := scene.RecordByIndex(0)
			Expect(ok).To(BeTrue())
			Expect(r.ID).To(Equal(1))

			_, ok = scene.RecordByIndex(8)
			Expect(ok).To(BeFalse())
			_, ok = scene.RecordByIndex(-1)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("auto-play", func() {
		It("suspends while dragging and waits after release", func() {
			x := swipe(scene, 100, 10, 10)
			Expect(scene.Controller().AutoPlaying()).To(BeTrue())

			scene.Advance(dt, input.Sample{Down: false, X: x, Y: 100})
			// Drain the flick inertia; friction must bring the wheel to an
			// exact stop, and idle rotation never re-injects velocity.
			idle(scene, 240)
			Expect(scene.Controller().Velocity()).To(BeZero())
		})

		It("toggles from the overlay", func() {
			scene.ToggleAutoPlay()
			Expect(scene.Controller().AutoPlaying()).To(BeFalse())
			scene.ToggleAutoPlay()
			Expect(scene.Controller().AutoPlaying()).To(BeTrue())
		})
	})
})
