package game

import (
	"sync/atomic"

	"github.com/lixenwraith/cube-boxer/hit"
	"github.com/lixenwraith/cube-boxer/status"
	"github.com/lixenwraith/cube-boxer/target"
)

// Metric keys
const (
	MetricSpawned          = "game.spawned"
	MetricHits             = "game.hits"
	MetricWrongHand        = "game.wrong_hand"
	MetricTooWeak          = "game.too_weak"
	MetricForbiddenHit     = "game.forbidden_hit"
	MetricMissBoundary     = "game.miss_boundary"
	MetricMissTimeout      = "game.miss_timeout"
	MetricForbiddenAvoided = "game.forbidden_avoided"
	MetricIgnoredContacts  = "game.ignored_contacts"
	MetricTicks            = "game.ticks"
	MetricDroppedPoses     = "game.dropped_poses"
	MetricDroppedContacts  = "game.dropped_contacts"
	MetricLastSpeed        = "game.last_speed"
)

// metrics caches registry pointers so the tick path writes atomics directly
type metrics struct {
	spawned          *atomic.Int64
	hits             *atomic.Int64
	wrongHand        *atomic.Int64
	tooWeak          *atomic.Int64
	forbiddenHit     *atomic.Int64
	missBoundary     *atomic.Int64
	missTimeout      *atomic.Int64
	forbiddenAvoided *atomic.Int64
	ignored          *atomic.Int64
	ticks            *atomic.Int64
	droppedPoses     *atomic.Int64
	droppedContacts  *atomic.Int64
	lastSpeed        *status.AtomicFloat
}

func newMetrics(reg *status.Registry) metrics {
	return metrics{
		spawned:          reg.Counter(MetricSpawned),
		hits:             reg.Counter(MetricHits),
		wrongHand:        reg.Counter(MetricWrongHand),
		tooWeak:          reg.Counter(MetricTooWeak),
		forbiddenHit:     reg.Counter(MetricForbiddenHit),
		missBoundary:     reg.Counter(MetricMissBoundary),
		missTimeout:      reg.Counter(MetricMissTimeout),
		forbiddenAvoided: reg.Counter(MetricForbiddenAvoided),
		ignored:          reg.Counter(MetricIgnoredContacts),
		ticks:            reg.Counter(MetricTicks),
		droppedPoses:     reg.Counter(MetricDroppedPoses),
		droppedContacts:  reg.Counter(MetricDroppedContacts),
		lastSpeed:        reg.Gauge(MetricLastSpeed),
	}
}

func (m *metrics) record(res hit.Resolution) {
	switch res.Outcome {
	case hit.OutcomeHit:
		m.hits.Add(1)
		m.lastSpeed.Set(res.Speed)
	case hit.OutcomeForbiddenHit:
		m.forbiddenHit.Add(1)
	case hit.OutcomeWrongHand:
		m.wrongHand.Add(1)
	case hit.OutcomeTooWeak:
		m.tooWeak.Add(1)
		m.lastSpeed.Set(res.Speed)
	case hit.OutcomeIgnored:
		m.ignored.Add(1)
	case hit.OutcomeMissBoundary, hit.OutcomeMissTimeout:
		switch {
		case res.Kind == target.KindForbidden:
			m.forbiddenAvoided.Add(1)
		case res.Outcome == hit.OutcomeMissBoundary:
			m.missBoundary.Add(1)
		default:
			m.missTimeout.Add(1)
		}
	}
}
