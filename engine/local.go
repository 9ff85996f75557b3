package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotdice/experiments/metrics"
	"hotdice/game"
	"hotdice/meta"
	"hotdice/player"
	"hotdice/utils"
)

// PlayTurn plays one turn for p: roll, score, let the player's policies pick
// a score and decide whether to go on, until the player banks or busts.
func (e *Engine) PlayTurn(p *player.Player, cfg game.GameConfig) (TurnResult, error) {
	return e.playTurn(p, cfg, metrics.NewDummyCollector())
}

func (e *Engine) playTurn(p *player.Player, cfg game.GameConfig, collector metrics.Collector) (TurnResult, error) {
	state := game.NewTurnState()
	for {
		drawn, err := e.source.RollDice(state.DiceToRoll(), meta.FACE_COUNT)
		if err != nil {
			return TurnResult{}, fmt.Errorf("rolling %d dice: %w", state.DiceToRoll(), err)
		}
		state.Rolls++
		collector.AddRoll()

		roll, err := game.NewRoll(drawn...)
		if err != nil {
			return TurnResult{}, err
		}
		options, err := e.scorer.Score(roll)
		if err != nil {
			return TurnResult{}, err
		}

		if len(options) == 0 {
			log.Debug().Msgf("%s busted on %v with %d points at risk", p.Name, roll, state.TurnScore)
			state.Bust()
			p.Bust()
			collector.AddBust()
			return TurnResult{Busted: true, Rolls: state.Rolls, HotDice: state.HotDice, State: state}, nil
		}

		choice, err := selectScore(p.Selector, state, options, cfg, roll.Dice())
		if err != nil {
			return TurnResult{}, err
		}

		hotDice := state.Apply(choice)
		if hotDice {
			log.Debug().Msgf("%s has hot dice with %d points this turn", p.Name, state.TurnScore)
			collector.AddHotDice()
		}

		if !p.RollAgain.ShouldRollAgain(state, cfg, hotDice) {
			p.Bank(state.TurnScore)
			collector.AddBank(state.TurnScore)
			return TurnResult{Banked: state.TurnScore, Rolls: state.Rolls, HotDice: state.HotDice, State: state}, nil
		}
		p.AddRoll()
	}
}

// selectScore asks the selector for a decomposition and checks it is one of
// the options offered for the dice drawn. The offered copy is returned so a
// selector cannot alter what is applied.
func selectScore(selector game.ScoreSelector, state game.TurnState, options []game.Decomposition, cfg game.GameConfig, drawn []int) (game.Decomposition, error) {
	choice := selector.SelectScore(state, options, cfg)
	if choice.Score <= 0 || len(choice.Consumed) == 0 {
		return game.Decomposition{}, fmt.Errorf("%w: empty selection from %d options", game.ErrPolicyContract, len(options))
	}
	if !utils.IsSubset(choice.Consumed, drawn) {
		return game.Decomposition{}, fmt.Errorf("%w: selection %v is not part of the dice drawn %v", game.ErrPolicyContract, choice.Consumed, drawn)
	}

	keys := make([]game.Key, len(options))
	for i, option := range options {
		keys[i] = option.Key()
	}
	i := utils.FindIndex(keys, choice.Key())
	if i < 0 || options[i].Score != choice.Score {
		return game.Decomposition{}, fmt.Errorf("%w: selection %v was not offered", game.ErrPolicyContract, choice)
	}
	return options[i], nil
}

// PlayGame resets p and plays turns until it reaches the winning score. It
// stops early when the turn limit is reached or ctx is done between turns.
func (e *Engine) PlayGame(ctx context.Context, p *player.Player, cfg game.GameConfig) (GameResult, error) {
	p.Reset()
	collector := e.newCollector()
	collector.Start()

	for p.TotalScore < cfg.WinningScore {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if p.Turns >= e.maxTurns {
			log.Warn().Msgf("%s stopped after %d turns with %d points", p.Name, p.Turns, p.TotalScore)
			break
		}
		if _, err := e.playTurn(p, cfg, collector); err != nil {
			return GameResult{}, fmt.Errorf("turn %d: %w", p.Turns+1, err)
		}
	}

	return GameResult{
		Player:     p.Name,
		TotalScore: p.TotalScore,
		Turns:      p.Turns,
		Busts:      p.Busts,
		Rolls:      p.Rolls,
		Won:        p.TotalScore >= cfg.WinningScore,
		Metric:     collector.Complete(),
	}, nil
}
