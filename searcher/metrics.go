package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the rollouts behind one roll-again decision.
type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int64
	FullPlayouts int64 // Rollouts that banked or busted before the cutoff
	Busts        int64
	TotalScore   int64 // Sum of banked turn scores
}

// MeanScore is the average turn score a rollout ended with.
func (m SearchMetric) MeanScore() float64 {
	if m.Episodes == 0 {
		return 0
	}
	return float64(m.TotalScore) / float64(m.Episodes)
}

// collector is shared by the search goroutines.
type collector struct {
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	busts        atomic.Int64
	totalScore   atomic.Int64
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.busts.Store(0)
	m.totalScore.Store(0)
}

func (m *collector) AddEpisode(score int, busted, full bool) {
	m.episodes.Add(1)
	m.totalScore.Add(int64(score))
	if busted {
		m.busts.Add(1)
	}
	if full {
		m.fullPlayouts.Add(1)
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
		Busts:        m.busts.Load(),
		TotalScore:   m.totalScore.Load(),
	}
}
