package experiments

import (
	"errors"
	"fmt"

	"hotdice/agent"
	"hotdice/experiments/metrics"
	"hotdice/game"
	"hotdice/player"
	"hotdice/searcher"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Dice a StopAtOrFewDice player still rolls with
const MIN_LIVE_DICE = 2

type PlayerConfig = metrics.PlayerConfig

const (
	StopAt              = "stop_at"
	StopAtUnlessHotDice = "stop_at_unless_hot_dice"
	StopAtOrFewDice     = "stop_at_or_few_dice"
	MonteCarlo          = "monte_carlo"
)

var selectors = map[string]func() agent.Selector{
	"highest_score":         agent.HighestScore,
	"best_per_die":          agent.BestPerDie,
	"best_per_die_hot_dice": agent.BestPerDieHotDice,
	"fewest_dice":           agent.FewestDice,
}

// SelectorNames lists the score strategies a PlayerConfig can name.
func SelectorNames() []string {
	return []string{"highest_score", "best_per_die", "best_per_die_hot_dice", "fewest_dice"}
}

// newPlayer builds a fresh player for config. seed is the seed of the game
// it plays; any search it runs draws its own seeds from it.
func newPlayer(config PlayerConfig, seed uint64) (*player.Player, error) {
	newSelector, ok := selectors[config.ScoreStrategy]
	if !ok {
		return nil, fmt.Errorf("score strategy %q: %w", config.ScoreStrategy, ErrUnknownStrategy)
	}
	selector := newSelector()

	var rollAgain game.RollAgainPolicy
	switch config.RollStrategy {
	case StopAt:
		rollAgain = agent.StopAt(config.Target)
	case StopAtUnlessHotDice:
		rollAgain = agent.StopAtUnlessHotDice(config.Target)
	case StopAtOrFewDice:
		rollAgain = agent.StopAtOrFewDice(config.Target, MIN_LIVE_DICE)
	case MonteCarlo:
		if config.Episodes <= 0 {
			return nil, fmt.Errorf("monte carlo player %q needs episodes", config.Name)
		}
		nextSeed := rolloutSeeds(seed)
		rollAgain = searcher.NewMonteCarlo(config.Goroutines,
			searcher.WithEpisodes(config.Episodes),
			searcher.WithSelector(selector),
			searcher.WithBaseline(agent.StopAtUnlessHotDice(config.Target)),
			searcher.WithSourceFactory(func() game.Source {
				return game.NewSeededSource(nextSeed())
			}),
		)
	default:
		return nil, fmt.Errorf("roll strategy %q: %w", config.RollStrategy, ErrUnknownStrategy)
	}

	return player.NewPlayer(config.Name, selector, rollAgain), nil
}
