package game

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"hotdice/meta"
	"hotdice/utils"
)

// allRolls returns every unordered roll of n dice, padded with placeholders.
func allRolls(n int) []Roll {
	var result []Roll
	var build func(dice []int, from int)
	build = func(dice []int, from int) {
		if len(dice) == n {
			result = append(result, MustRoll(dice...))
			return
		}
		for face := from; face <= meta.FACE_COUNT; face++ {
			build(append(dice, face), face)
		}
	}
	build([]int{}, 1)
	return result
}

func scores(ds []Decomposition) []int {
	result := make([]int, len(ds))
	for i, d := range ds {
		result[i] = d.Score
	}
	return result
}

func TestScoreRollExamples(t *testing.T) {
	t.Run("straight", func(t *testing.T) {
		got, err := ScoreRoll(MustRoll(1, 2, 3, 4, 5, 6))
		require.NoError(t, err)

		want := []Decomposition{
			{Score: 1500, Consumed: []int{1, 2, 3, 4, 5, 6}, Remaining: []int{}, Kind: KindStraight, Parts: 1},
			{Score: 150, Consumed: []int{1, 5}, Remaining: []int{2, 3, 4, 6}, Kind: KindIndividual, Parts: 1},
			{Score: 100, Consumed: []int{1}, Remaining: []int{2, 3, 4, 5, 6}, Kind: KindIndividual, Parts: 1},
			{Score: 50, Consumed: []int{5}, Remaining: []int{1, 2, 3, 4, 6}, Kind: KindIndividual, Parts: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ScoreRoll mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("straight ignores dice order", func(t *testing.T) {
		got, err := ScoreRoll(MustRoll(6, 5, 4, 3, 2, 1))
		require.NoError(t, err)
		require.Equal(t, 1500, got[0].Score)
		require.Equal(t, KindStraight, got[0].Kind)

		got, err = ScoreRoll(MustRoll(2, 3, 4, 6, 1))
		require.NoError(t, err)
		require.Equal(t, []int{100}, scores(got), "Five distinct dice are not a straight")
	})

	t.Run("six of a kind doubles three times", func(t *testing.T) {
		got, err := ScoreRoll(MustRoll(1, 1, 1, 1, 1, 1))
		require.NoError(t, err)

		require.Equal(t, []int{8000, 4000, 2000, 1000, 200, 100}, scores(got))
		require.Equal(t, KindMultiple, got[0].Kind)
		require.True(t, got[0].IsHotDice())
		require.Equal(t, []int{1, 1, 1}, got[3].Consumed)
		require.Equal(t, []int{1, 1, 1}, got[3].Remaining, "A smaller multiple keeps the other dice live")
	})

	t.Run("individual dice alone", func(t *testing.T) {
		scorer := NewScorer()
		roll := MustRoll(1, 1, 1, 1, 1, 1)

		got, err := scorer.Individuals(roll, false)
		require.NoError(t, err)
		require.Equal(t, []int{600, 500, 400, 300, 200, 100}, scores(got))

		got, err = scorer.Individuals(roll, true)
		require.NoError(t, err)
		require.Equal(t, []int{200, 100}, scores(got), "Three or more of a face belong to multiples")
	})

	t.Run("multiple merged with a single", func(t *testing.T) {
		got, err := ScoreRoll(MustRoll(1, 1, 1, 3, 4, 5))
		require.NoError(t, err)

		require.Equal(t, []int{1050, 1000, 250, 200, 150, 100, 50}, scores(got))
		best := got[0]
		require.Equal(t, []int{1, 1, 1, 5}, best.Consumed)
		require.Equal(t, []int{3, 4}, best.Remaining)
		require.Equal(t, KindMultiple|KindIndividual, best.Kind)
		require.True(t, best.IsCombination())
		require.Equal(t, "multiple+individual", best.Kind.String())
	})

	t.Run("two multiples merged", func(t *testing.T) {
		got, err := ScoreRoll(MustRoll(2, 3, 2, 3, 2, 3))
		require.NoError(t, err)

		require.Equal(t, []int{500, 300, 200}, scores(got))
		require.Equal(t, KindMultiple, got[0].Kind)
		require.Equal(t, 2, got[0].Parts)
		require.True(t, got[0].IsHotDice())
	})

	t.Run("bust", func(t *testing.T) {
		for _, roll := range []Roll{
			MustRoll(),
			MustRoll(2, 3, 3, 2, 6, 6),
			MustRoll(4, 4, 6),
		} {
			got, err := ScoreRoll(roll)
			require.NoError(t, err)
			require.Empty(t, got, "Roll %v should bust", roll)
		}
	})

	t.Run("fewer dice ignore placeholders", func(t *testing.T) {
		got, err := ScoreRoll(Roll{5, 0, 5, 0, 5, 0})
		require.NoError(t, err)

		require.Equal(t, []int{500, 100, 50}, scores(got))
		require.Equal(t, []int{}, got[0].Remaining)
		require.Equal(t, []int{5}, got[1].Remaining)
	})
}

func TestScoreRollTieBreak(t *testing.T) {
	// Three 2s with {1,5} and three 2s with {1} and {5} consume the same dice
	// for the same score; the union of fewer parts is found first.
	got, err := ScoreRoll(MustRoll(2, 2, 2, 1, 5, 3))
	require.NoError(t, err)

	require.Equal(t, []int{350, 300, 250, 200, 150, 100, 50}, scores(got))
	require.Equal(t, []int{1, 2, 2, 2, 5}, got[0].Consumed)
	require.Equal(t, 2, got[0].Parts, "First discovered union should win the tie")
	require.Equal(t, []int{3}, got[0].Remaining)
}

func TestScoreRollInvalid(t *testing.T) {
	_, err := ScoreRoll(Roll{1, 2, 3, 4, 5, 7})
	require.ErrorIs(t, err, ErrInvalidRoll)

	_, err = ScoreRoll(Roll{-1})
	require.ErrorIs(t, err, ErrInvalidRoll)

	_, err = NewScorer().Individuals(Roll{9}, true)
	require.ErrorIs(t, err, ErrInvalidRoll)
}

func TestScoreRollProperties(t *testing.T) {
	rolls := []Roll{}
	for n := 0; n <= meta.DICE_COUNT; n++ {
		rolls = append(rolls, allRolls(n)...)
	}

	for _, roll := range rolls {
		got, err := ScoreRoll(roll)
		require.NoError(t, err)

		dice := roll.Dice()
		seen := map[Key]bool{}
		for i, d := range got {
			require.Positive(t, d.Score, "roll %v", roll)
			require.True(t, utils.IsSubset(d.Consumed, dice), "roll %v consumed %v", roll, d.Consumed)
			require.Empty(t, utils.DifferenceSymmetric(append(slices.Clone(d.Consumed), d.Remaining...), dice),
				"roll %v: consumed and remaining should rebuild the roll", roll)
			require.False(t, seen[d.Key()], "roll %v has duplicate %v", roll, d.Consumed)
			seen[d.Key()] = true
			if i > 0 {
				require.GreaterOrEqual(t, got[i-1].Score, d.Score, "roll %v is not sorted", roll)
			}
		}

		again, err := ScoreRoll(roll)
		require.NoError(t, err)
		if diff := cmp.Diff(got, again); diff != "" {
			t.Fatalf("roll %v scored differently on a second call (-first +second):\n%s", roll, diff)
		}
	}
}

func TestScoreRollTopScores(t *testing.T) {
	cases := []struct {
		roll Roll
		best int
	}{
		{MustRoll(5, 5, 5, 5, 5, 5), 4000},
		{MustRoll(1, 1, 5, 5, 2, 3), 300},
		{MustRoll(4, 4, 4, 4, 1, 5), 950},
		{MustRoll(6, 6, 6, 1, 1, 1), 1600},
		{MustRoll(3, 3, 3, 3, 3, 2), 1200},
		{MustRoll(1, 2, 3, 4, 5, 5), 200},
	}
	for _, tc := range cases {
		got, err := ScoreRoll(tc.roll)
		require.NoError(t, err)
		require.Equal(t, tc.best, got[0].Score, "roll %v", tc.roll)
	}
}

func TestFixpointMerge(t *testing.T) {
	t.Run("matches single pass under standard rules", func(t *testing.T) {
		single := NewScorer()
		fixpoint := NewScorer(WithFixpointMerge())

		for _, roll := range allRolls(meta.DICE_COUNT) {
			want, err := single.Score(roll)
			require.NoError(t, err)
			got, err := fixpoint.Score(roll)
			require.NoError(t, err)

			wantKeys := map[Key]int{}
			for _, d := range want {
				wantKeys[d.Key()] = d.Score
			}
			gotKeys := map[Key]int{}
			for _, d := range got {
				gotKeys[d.Key()] = d.Score
			}
			require.Equal(t, wantKeys, gotKeys, "roll %v", roll)
		}
	})

	t.Run("reuses a base score when rules allow", func(t *testing.T) {
		// Pairs make multiples but a pair of 2s scores nothing, so {2,2} is
		// only reachable by taking the single 2 twice.
		rules := NewStandardRules()
		rules.Singles[2] = 20
		rules.Minimum = 2
		rules.ThreeOfAKind[2] = 0
		roll := MustRoll(2, 2, 3, 4, 6)

		single, err := NewScorer(WithRules(rules)).Score(roll)
		require.NoError(t, err)
		fixpoint, err := NewScorer(WithRules(rules), WithFixpointMerge()).Score(roll)
		require.NoError(t, err)

		require.Equal(t, []int{20}, scores(single))
		require.Equal(t, []int{40, 20}, scores(fixpoint))
		require.Equal(t, 2, fixpoint[0].Parts)
	})
}

func TestCustomRules(t *testing.T) {
	rules := NewStandardRules()
	rules.Straight = 0

	got, err := NewScorer(WithRules(rules)).Score(MustRoll(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	require.Equal(t, []int{150, 100, 50}, scores(got), "Zero scores are never offered")
}

func TestCustomSinglesScorePromptly(t *testing.T) {
	rules := NewStandardRules()
	rules.Singles[2] = 20

	type result struct {
		got []Decomposition
		err error
	}
	done := make(chan result, 1)
	go func() {
		got, err := NewScorer(WithRules(rules)).Score(MustRoll(1, 1, 2, 2, 5, 5))
		done <- result{got, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		got := r.got
		// Every sub-multiset of the roll is itself an individual score
		require.Len(t, got, 26)
		require.Equal(t, 340, got[0].Score)
		require.True(t, got[0].IsHotDice())
	case <-time.After(5 * time.Second):
		t.Fatal("Score should not enumerate groups that cannot fit the roll")
	}
}

// basePool gathers the candidates Score merges.
func basePool(s *Scorer, r Roll) []candidate {
	pool := append(s.straight(r), s.multiples(r)...)
	pool = append(pool, s.individuals(r.Dice(), true)...)
	return slices.DeleteFunc(pool, func(c candidate) bool { return c.score <= 0 })
}

// mergeEveryGroup unions every group of the pool, fitting or not.
func mergeEveryGroup(roll Key, pool []candidate) []candidate {
	known := map[Key]bool{}
	for _, c := range pool {
		known[c.key] = true
	}
	var merged []candidate
	index := map[Key]int{}
	for group := range utils.Powerset(pool, 2, -1) {
		u := union(group...)
		if known[u.key] || !u.key.within(roll) {
			continue
		}
		merged = keepBest(merged, index, u)
	}
	return merged
}

func TestMergeMatchesEveryGroup(t *testing.T) {
	s := NewScorer()
	for n := 0; n <= meta.DICE_COUNT; n++ {
		for _, roll := range allRolls(n) {
			pool := basePool(s, roll)

			want := mergeEveryGroup(roll.Counts(), pool)
			got := merge(roll.Counts(), pool)

			if diff := cmp.Diff(want, got, cmp.AllowUnexported(candidate{})); diff != "" {
				t.Fatalf("roll %v merged differently (-every group +fitting groups):\n%s", roll, diff)
			}
		}
	}
}
