package loop_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/typefx/internal/clock"
	"github.com/san-kum/typefx/internal/loop"
	"github.com/san-kum/typefx/internal/reveal"
)

var _ = Describe("Loop", func() {
	var (
		clk *clock.Manual
		txt *reveal.Text
		rec *reveal.Recorder
	)

	BeforeEach(func() {
		clk = clock.NewManual(0)
		rec = &reveal.Recorder{}
		txt = reveal.New("abcd", clk, reveal.WithObserver(rec))
	})

	Context("with a virtual clock", func() {
		It("drives a reveal to completion", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk))
			l.Dispatch(txt.StartReveal())

			stats, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(loop.Stats{Frames: 6, Ticks: 5, Stops: 1}))
			Expect(txt.Visible()).To(Equal("abcd"))
			Expect(txt.Animating()).To(BeFalse())
			Expect(l.Pending()).To(BeZero())
		})

		It("re-samples the clock on every tick", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk))
			l.Dispatch(txt.StartReveal())
			_, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())

			Expect(rec.Targets()).To(Equal([]float64{1, 2, 3, 4, 5}))
			last, ok := rec.Last()
			Expect(ok).To(BeTrue())
			Expect(last.Continue).To(BeFalse())
		})

		It("advances one frame per tick turn", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk), loop.WithFrameRate(30))
			Expect(l.FrameInterval()).To(BeNumerically("~", 33.333, 0.001))

			l.Dispatch(txt.StartReveal())
			_, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(clk.Now()).To(BeNumerically("~", 100, 0.001))
		})

		It("reports every frame", func() {
			var frames []int
			l := loop.New(txt, loop.WithVirtualClock(clk), loop.WithFrameFunc(func(n int) {
				frames = append(frames, n)
			}))
			l.Dispatch(txt.StartReveal())
			stats, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(stats.Frames))
			Expect(frames[0]).To(Equal(1))
		})

		It("stops at the frame limit", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk), loop.WithMaxFrames(2))
			l.Dispatch(txt.StartReveal())

			stats, err := l.Run(context.Background())
			Expect(err).To(MatchError(loop.ErrFrameLimit))
			Expect(stats.Frames).To(Equal(2))
			Expect(l.Pending()).To(Equal(1))
		})

		It("drops ticks for a cancelled run", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk))
			l.Dispatch(txt.StartReveal())
			txt.Stop()

			stats, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(loop.Stats{Frames: 1, Ticks: 1}))
			Expect(txt.Visible()).To(Equal("abcd"))
			Expect(txt.Animating()).To(BeFalse())
			Expect(rec.Samples).To(BeEmpty())
		})

		It("lets a restart supersede the running chain", func() {
			l := loop.New(txt, loop.WithVirtualClock(clk))
			l.Dispatch(txt.StartReveal())
			l.Dispatch(txt.StartReveal())

			stats, err := l.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Stops).To(Equal(1))
			for _, s := range rec.Samples {
				Expect(s.Run).To(Equal(txt.Run()))
			}
		})
	})

	It("returns immediately with nothing queued", func() {
		l := loop.New(txt, loop.WithVirtualClock(clk))
		stats, err := l.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(stats).To(Equal(loop.Stats{}))
	})

	It("honours context cancellation", func() {
		l := loop.New(txt)
		l.Dispatch(txt.StartReveal())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := l.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("paces ticks in real time", func() {
		wall := clock.NewWall()
		t := reveal.New("ab", wall)
		l := loop.New(t, loop.WithFrameRate(240))
		l.Dispatch(t.StartReveal())

		start := time.Now()
		stats, err := l.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))
		Expect(stats.Stops).To(Equal(1))
		Expect(t.Visible()).To(Equal("ab"))
		Expect(t.Animating()).To(BeFalse())
	})
})
