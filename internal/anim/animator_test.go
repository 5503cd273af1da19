package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/anim"
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

// line is a Source whose i-th point is (i, -i). It panics on out-of-range
// reads so a bad frame index fails loudly.
type line int

func (l line) Len() int { return int(l) }

func (l line) At(i int) sim.Point {
	if i < 0 || i >= int(l) {
		panic("index out of range")
	}
	return sim.Point{X: float64(i), Y: -float64(i)}
}

var _ = Describe("Animator", func() {
	Context("with a stride that is not positive", func() {
		It("rejects the configuration", func() {
			_, err := anim.New(line(10), 0)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))

			_, err = anim.New(line(10), -3)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("over 10000 samples at stride 10", func() {
		var a *anim.Animator

		BeforeEach(func() {
			var err error
			a, err = anim.New(line(10000), 10)
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts initialized with nothing drawn", func() {
			Expect(a.Phase()).To(Equal(anim.Initialized))
			Expect(a.Points()).To(BeEmpty())
			Expect(a.FrameCount()).To(Equal(1000))
			Expect(a.SampleIndex()).To(Equal(-1))
		})

		It("grows by exactly one point per frame", func() {
			for i := 0; i < a.FrameCount(); i++ {
				p, ok := a.Advance()
				Expect(ok).To(BeTrue())
				Expect(p).To(Equal(sim.Point{X: float64(i * 10), Y: -float64(i * 10)}))
				Expect(a.Points()).To(HaveLen(i + 1))
				Expect(a.SampleIndex()).To(Equal(i * 10))
			}
		})

		It("is running between the first and the last frame", func() {
			a.Advance()
			Expect(a.Phase()).To(Equal(anim.Running))
			Expect(a.Done()).To(BeFalse())
		})

		It("stops after the last frame without repeating", func() {
			for a.Phase() != anim.Done {
				a.Advance()
			}
			Expect(a.Points()).To(HaveLen(1000))
			Expect(a.Progress()).To(Equal(1.0))

			_, ok := a.Advance()
			Expect(ok).To(BeFalse())
			Expect(a.Points()).To(HaveLen(1000))
			Expect(a.Points()[999]).To(Equal(sim.Point{X: 9990, Y: -9990}))
		})

		It("returns to initialized on reset", func() {
			a.Advance()
			a.Advance()
			a.Reset()
			Expect(a.Phase()).To(Equal(anim.Initialized))
			Expect(a.Points()).To(BeEmpty())
		})
	})

	DescribeTable("frame count never reads past the end",
		func(n, stride, frames int) {
			a, err := anim.New(line(n), stride)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.FrameCount()).To(Equal(frames))

			Expect(func() {
				for !a.Done() {
					a.Advance()
				}
			}).NotTo(Panic())
			Expect(a.Points()).To(HaveLen(frames))
		},
		Entry("evenly divided", 100, 10, 10),
		Entry("remainder dropped", 105, 10, 10),
		Entry("one short of the next frame", 109, 10, 10),
		Entry("stride of one", 7, 1, 7),
		Entry("stride longer than the trajectory", 5, 10, 0),
		Entry("empty trajectory", 0, 3, 0),
	)

	It("is done immediately when there are no frames", func() {
		a, err := anim.New(line(3), 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Phase()).To(Equal(anim.Done))
		Expect(a.Progress()).To(Equal(1.0))
	})

	It("replays a real orbit", func() {
		tr := sim.Integrate(sim.DefaultParams(), 1, 0, 0, 1)
		a, err := anim.New(tr, 10)
		Expect(err).NotTo(HaveOccurred())

		first, ok := a.Advance()
		Expect(ok).To(BeTrue())
		Expect(first).To(Equal(sim.Point{X: 1, Y: 0}))

		for !a.Done() {
			a.Advance()
		}
		Expect(a.Points()).To(HaveLen(1000))
	})
})

var _ = Describe("Phase", func() {
	It("has readable names", func() {
		Expect(anim.Initialized.String()).To(Equal("initialized"))
		Expect(anim.Running.String()).To(Equal("running"))
		Expect(anim.Done.String()).To(Equal("done"))
		Expect(anim.Phase(7).String()).To(Equal("phase(7)"))
	})
})
