package sim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/allelesim/internal/genetics"
	"github.com/san-kum/allelesim/internal/sim"
)

// steadySource always draws the same uniform value.
type steadySource struct{ v float64 }

func (s steadySource) Float64() float64 { return s.v }

// fastParams keeps all forces neutral except drift, with the cadence at
// its 50ms minimum so timer specs converge quickly.
func fastParams() genetics.ForceParams {
	p := genetics.DefaultParams()
	p.DriftStrength = 100
	p.ReplicationSpeed = 100
	return p
}

var _ = Describe("Driver", func() {
	var d *sim.Driver

	BeforeEach(func() {
		d = sim.NewDriver(fastParams(), steadySource{v: 0.2})
	})

	AfterEach(func() {
		d.Pause()
	})

	Describe("creation", func() {
		It("starts stopped at the initial frequency", func() {
			st := d.State()
			Expect(st.Running).To(BeFalse())
			Expect(st.Frequency).To(Equal(sim.InitialFrequency))
			Expect(st.Generation).To(Equal(0))
			Expect(st.History).To(Equal([]float64{sim.InitialFrequency}))
		})
	})

	Describe("Start", func() {
		It("begins committing generations", func() {
			d.Start()
			Expect(d.State().Running).To(BeTrue())
			Eventually(func() int {
				return d.State().Generation
			}, "3s", "10ms").Should(BeNumerically(">=", 3))
		})

		It("does not arm a second timer when called twice", func() {
			d.Start()
			d.Start()

			start := time.Now()
			Eventually(func() int {
				return d.State().Generation
			}, "3s", "10ms").Should(BeNumerically(">=", 5))
			d.Pause()

			// One tick per 50ms interval; a doubled timer would commit
			// roughly twice as many generations as the elapsed time
			// allows.
			budget := int(time.Since(start)/sim.Interval(100)) + 2
			Expect(d.State().Generation).To(BeNumerically("<=", budget))
		})
	})

	Describe("Pause", func() {
		It("freezes the state entirely", func() {
			d.Start()
			Eventually(func() int {
				return d.State().Generation
			}, "3s", "10ms").Should(BeNumerically(">", 0))
			d.Pause()

			frozen := d.State()
			Expect(frozen.Running).To(BeFalse())
			Consistently(func() sim.State {
				return d.State()
			}, "300ms", "20ms").Should(Equal(frozen))
		})

		It("is a no-op when already stopped", func() {
			d.Pause()
			Expect(d.State().Running).To(BeFalse())
		})
	})

	Describe("Reset", func() {
		It("restores creation defaults from any prior state", func() {
			d.Start()
			Eventually(func() int {
				return d.State().Generation
			}, "3s", "10ms").Should(BeNumerically(">", 2))

			d.Reset()
			st := d.State()
			Expect(st.Running).To(BeFalse())
			Expect(st.Frequency).To(Equal(0.5))
			Expect(st.Generation).To(Equal(0))
			Expect(st.History).To(Equal([]float64{0.5}))

			Consistently(func() int {
				return d.State().Generation
			}, "200ms", "20ms").Should(Equal(0))
		})
	})

	Describe("Configure", func() {
		It("clamps out-of-range fields", func() {
			p := fastParams()
			p.MutationRate = 400
			p.DriftStrength = -10
			d.Configure(p)

			got := d.Params()
			Expect(got.MutationRate).To(Equal(100.0))
			Expect(got.DriftStrength).To(Equal(0.0))
		})

		It("takes effect on subsequent ticks", func() {
			d.Start()
			Eventually(func() float64 {
				return d.State().Frequency
			}, "3s", "10ms").ShouldNot(Equal(0.5))
			d.Pause()

			// Neutralize every force at the paused frequency: after
			// restarting, generations keep counting but the trajectory
			// stops moving.
			settled := d.State()
			neutral := genetics.ForceParams{
				MutationRate:      50,
				SelectionStrength: 50,
				GeneFlowRate:      settled.Frequency * 100,
				PopulationSize:    50,
				ReplicationSpeed:  100,
			}
			d.Configure(neutral)
			d.Start()
			Eventually(func() int {
				return d.State().Generation
			}, "3s", "10ms").Should(BeNumerically(">", settled.Generation+2))
			Expect(d.State().Frequency).To(BeNumerically("~", settled.Frequency, 1e-9))
		})
	})

	Describe("State snapshots", func() {
		It("hands out history copies, not aliases", func() {
			st := d.State()
			st.History[0] = 123
			Expect(d.State().History[0]).To(Equal(0.5))
		})

		It("stays internally consistent under a running timer", func() {
			d.Start()
			deadline := time.Now().Add(500 * time.Millisecond)
			for time.Now().Before(deadline) {
				st := d.State()
				// Frequency committed together with its history append.
				Expect(st.History[len(st.History)-1]).To(Equal(st.Frequency))
				Expect(len(st.History)).To(Equal(st.Generation + 1))
			}
		})
	})

	Describe("Subscribe", func() {
		It("delivers a snapshot per committed tick", func() {
			ticks := make(chan sim.State, 64)
			d.Subscribe(func(st sim.State) { ticks <- st })
			d.Start()

			var first, second sim.State
			Eventually(ticks, "3s").Should(Receive(&first))
			Eventually(ticks, "3s").Should(Receive(&second))
			Expect(second.Generation).To(Equal(first.Generation + 1))
		})
	})

	Describe("Color", func() {
		It("encodes the active parameters", func() {
			p := fastParams()
			p.MutationRate = 100
			d.Configure(p)
			Expect(d.Color().R).To(Equal(uint8(255)))
		})
	})
})

var _ = Describe("Interval", func() {
	DescribeTable("maps speed to cadence",
		func(speed float64, want time.Duration) {
			Expect(sim.Interval(speed)).To(Equal(want))
		},
		Entry("reference speed", 50.0, 100*time.Millisecond),
		Entry("full speed", 100.0, 50*time.Millisecond),
		Entry("half reference", 25.0, 200*time.Millisecond),
		Entry("minimum floor", 1.0, 5*time.Second),
		Entry("zero guarded to floor", 0.0, 5*time.Second),
		Entry("over-range clamped", 500.0, 50*time.Millisecond),
	)
})
