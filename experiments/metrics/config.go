package metrics

// PlayerConfig describes one simulated player of an experiment.
type PlayerConfig struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Target        int    `yaml:"target"` // Turn score the roll-again policy stops at
	RollStrategy  string `yaml:"rollStrategy"`
	ScoreStrategy string `yaml:"scoreStrategy"`
	Goroutines    int    `yaml:"goroutines,omitempty"` // Monte Carlo search only
	Episodes      int    `yaml:"episodes,omitempty"`   // Monte Carlo search only
}

// GameRecord is one game played by one player config.
type GameRecord struct {
	Game       int // Index of the game within its config
	Config     int // PlayerConfig.ID
	Player     string
	TotalScore int
	Turns      int
	Busts      int
	Rolls      int
	Won        bool
	GameMetric
}
