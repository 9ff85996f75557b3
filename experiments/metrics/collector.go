package metrics

import "time"

// GameMetric describes how a single simulated game went.
type GameMetric struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Rolls        int // Dice rolls made, including busting rolls
	Busts        int
	HotDice      int
	Banks        int
	BankedPoints int
	MaxTurnScore int // Highest score banked in one turn
}

type Collector interface {
	Start()
	AddRoll()
	AddBust()
	AddHotDice()
	AddBank(score int)
	Complete() GameMetric
}

// collector is owned by the goroutine playing the game.
type collector struct {
	startTime    time.Time
	rolls        int
	busts        int
	hotDice      int
	banks        int
	bankedPoints int
	maxTurnScore int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddRoll() {
	m.rolls++
}

func (m *collector) AddBust() {
	m.busts++
}

func (m *collector) AddHotDice() {
	m.hotDice++
}

func (m *collector) AddBank(score int) {
	m.banks++
	m.bankedPoints += score
	m.maxTurnScore = max(m.maxTurnScore, score)
}

func (m *collector) Complete() GameMetric {
	end := time.Now()
	return GameMetric{
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		Rolls:        m.rolls,
		Busts:        m.busts,
		HotDice:      m.hotDice,
		Banks:        m.banks,
		BankedPoints: m.bankedPoints,
		MaxTurnScore: m.maxTurnScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()               {}
func (m *dummyCollector) AddRoll()             {}
func (m *dummyCollector) AddBust()             {}
func (m *dummyCollector) AddHotDice()          {}
func (m *dummyCollector) AddBank(score int)    {}
func (m *dummyCollector) Complete() GameMetric { return GameMetric{} }
