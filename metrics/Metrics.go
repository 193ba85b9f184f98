// Package metrics keeps per-session counters for the game loop on a private
// prometheus registry. Nothing is served; the totals end up in the log.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"ContribPong/core"
)

type Metrics struct {
	Frames        prometheus.Counter
	PaddleHits    *prometheus.CounterVec
	Goals         *prometheus.CounterVec
	Resets        prometheus.Counter
	FrameDuration prometheus.Histogram
}

// Summary is a point-in-time copy of the counters.
type Summary struct {
	Frames     float64
	LeftHits   float64
	RightHits  float64
	LeftGoals  float64
	RightGoals float64
	Resets     float64
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "pong_frames_total",
			Help: "Frames simulated and rendered",
		}),
		PaddleHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_paddle_hits_total",
			Help: "Ball bounces off a paddle",
		}, []string{"side"}),
		Goals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_goals_total",
			Help: "Points scored, by scoring side",
		}, []string{"side"}),
		Resets: factory.NewCounter(prometheus.CounterOpts{
			Name: "pong_resets_total",
			Help: "Manual match resets",
		}),
		FrameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pong_frame_duration_seconds",
			Help:    "Time spent on one frame before pacing",
			Buckets: []float64{0.001, 0.004, 0.008, 0.016, 0.033, 0.1},
		}),
	}
}

// Observe records the outcome of one simulation step.
func (m *Metrics) Observe(ev core.Events) {
	if ev.LeftHit {
		m.PaddleHits.WithLabelValues(core.LeftSide.String()).Inc()
	}
	if ev.RightHit {
		m.PaddleHits.WithLabelValues(core.RightSide.String()).Inc()
	}
	if ev.Scorer != core.NoSide {
		m.Goals.WithLabelValues(ev.Scorer.String()).Inc()
	}
}

func (m *Metrics) ObserveFrame(d time.Duration) {
	m.Frames.Inc()
	m.FrameDuration.Observe(d.Seconds())
}

func (m *Metrics) Summary() Summary {
	return Summary{
		Frames:     counterValue(m.Frames),
		LeftHits:   counterValue(m.PaddleHits.WithLabelValues(core.LeftSide.String())),
		RightHits:  counterValue(m.PaddleHits.WithLabelValues(core.RightSide.String())),
		LeftGoals:  counterValue(m.Goals.WithLabelValues(core.LeftSide.String())),
		RightGoals: counterValue(m.Goals.WithLabelValues(core.RightSide.String())),
		Resets:     counterValue(m.Resets),
	}
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
