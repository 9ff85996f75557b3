package game

import (
	"slices"

	"hotdice/meta"
	"hotdice/utils"
)

type ScorerOption func(s *Scorer)

// WithRules replaces the standard scoring table.
func WithRules(rules Rules) ScorerOption {
	return func(s *Scorer) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithFixpointMerge keeps merging combinations with each other and with the
// base scores until no new set of consumed dice appears. Without it, only
// unions of the base scores are considered.
func WithFixpointMerge() ScorerOption {
	return func(s *Scorer) {
		s.fixpoint = true
	}
}

// Scorer enumerates the scoring decompositions of a roll. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	rules    Rules
	fixpoint bool
}

func NewScorer(options ...ScorerOption) *Scorer {
	s := &Scorer{ // Default values
		rules: NewStandardRules(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var standardScorer = NewScorer()

// ScoreRoll scores a roll with the standard rules.
func ScoreRoll(r Roll) ([]Decomposition, error) {
	return standardScorer.Score(r)
}

func (s *Scorer) Rules() Rules {
	return s.rules
}

// candidate is a decomposition before its remaining dice are known.
type candidate struct {
	score    int
	consumed []int // Ascending
	key      Key
	kind     Kind
	parts    int
}

func newCandidate(score int, consumed []int, kind Kind) candidate {
	slices.Sort(consumed)
	return candidate{
		score:    score,
		consumed: consumed,
		key:      keyOf(consumed),
		kind:     kind,
		parts:    1,
	}
}

func union(group ...candidate) candidate {
	u := candidate{}
	for _, c := range group {
		u.score += c.score
		u.consumed = append(u.consumed, c.consumed...)
		u.key = u.key.add(c.key)
		u.kind |= c.kind
		u.parts += c.parts
	}
	slices.Sort(u.consumed)
	return u
}

// Score returns every way of scoring the roll, best first. Two results
// never consume the same dice; when several ways do, the highest score is
// kept, and on equal scores the first found in the order straight,
// multiples, individual dice, combinations. A roll with nothing to score
// returns an empty result.
func (s *Scorer) Score(r Roll) ([]Decomposition, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pool := []candidate{}
	pool = append(pool, s.straight(r)...)
	pool = append(pool, s.multiples(r)...)
	pool = append(pool, s.individuals(r.Dice(), true)...)
	pool = slices.DeleteFunc(pool, func(c candidate) bool { return c.score <= 0 })

	var merged []candidate
	if s.fixpoint {
		merged = mergeFixpoint(r.Counts(), pool)
	} else {
		merged = merge(r.Counts(), pool)
	}

	return finalize(r, append(pool, merged...)), nil
}

// Individuals scores only the single scoring dice of the roll. With
// excludeMultiples, groups that would themselves make a multiple are left
// to the multiples scorer.
func (s *Scorer) Individuals(r Roll, excludeMultiples bool) ([]Decomposition, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return finalize(r, s.individuals(r.Dice(), excludeMultiples)), nil
}

func (s *Scorer) straight(r Roll) []candidate {
	if r.NumDice() != meta.DICE_COUNT {
		return nil
	}
	counts := r.Counts()
	for _, count := range counts {
		if count > 1 {
			return nil
		}
	}
	return []candidate{newCandidate(s.rules.StraightScore(), r.Dice(), KindStraight)}
}

func (s *Scorer) multiples(r Roll) []candidate {
	var result []candidate
	counts := r.Counts()
	for face := 1; face <= meta.FACE_COUNT; face++ {
		for count := s.rules.MinMultiple(); count <= counts[face]; count++ {
			consumed := slices.Repeat([]int{face}, count)
			result = append(result, newCandidate(s.rules.MultipleScore(face, count), consumed, KindMultiple))
		}
	}
	return result
}

func (s *Scorer) individuals(dice []int, excludeMultiples bool) []candidate {
	scoring := []int{}
	for _, die := range dice {
		if s.rules.SingleScore(die) > 0 {
			scoring = append(scoring, die)
		}
	}

	var result []candidate
	index := map[Key]int{}
	for combo := range utils.Powerset(scoring, 1, -1) {
		key := keyOf(combo)
		if excludeMultiples && s.makesMultiple(key) {
			continue
		}

		score := 0
		for _, die := range combo {
			score += s.rules.SingleScore(die)
		}

		if i, ok := index[key]; ok {
			if score > result[i].score {
				result[i].score = score
			}
			continue
		}
		index[key] = len(result)
		result = append(result, newCandidate(score, combo, KindIndividual))
	}
	return result
}

func (s *Scorer) makesMultiple(key Key) bool {
	for _, count := range key {
		if count >= s.rules.MinMultiple() {
			return true
		}
	}
	return false
}

// merge unions every group of two or more pool candidates once. A union is
// kept only if the roll holds its dice and no pool candidate consumes the
// same dice. Groups are visited shortest first, in index order within a
// length.
func merge(roll Key, pool []candidate) []candidate {
	known := make(map[Key]bool, len(pool))
	for _, c := range pool {
		known[c.key] = true
	}

	var merged []candidate
	index := map[Key]int{}
	for size := 2; size <= len(pool); size++ {
		found := fittingGroups(pool, size, roll, func(group []candidate) {
			u := union(group...)
			if known[u.key] {
				return
			}
			merged = keepBest(merged, index, u)
		})
		if !found { // No larger group can fit either
			break
		}
	}
	return merged
}

// fittingGroups visits the size-length groups of pool whose dice the roll
// holds, in index order. A prefix that no longer fits is not extended. It
// reports whether any group was visited.
func fittingGroups(pool []candidate, size int, roll Key, visit func([]candidate)) bool {
	group := make([]candidate, 0, size)
	found := false

	var extend func(start int, key Key)
	extend = func(start int, key Key) {
		if len(group) == size {
			found = true
			visit(group)
			return
		}
		for i := start; i <= len(pool)-(size-len(group)); i++ {
			next := key.add(pool[i].key)
			if !next.within(roll) {
				continue
			}
			group = append(group, pool[i])
			extend(i+1, next)
			group = group[:len(group)-1]
		}
	}
	extend(0, Key{})
	return found
}

// mergeFixpoint unions pairs drawn from the pool and earlier unions,
// including a candidate with itself, until a pass adds or improves nothing.
func mergeFixpoint(roll Key, pool []candidate) []candidate {
	known := make(map[Key]bool, len(pool))
	for _, c := range pool {
		known[c.key] = true
	}

	var merged []candidate
	index := map[Key]int{}
	for changed := true; changed; {
		changed = false
		current := append(slices.Clone(pool), merged...)
		for i := range current {
			for j := i; j < len(current); j++ {
				u := union(current[i], current[j])
				if known[u.key] || !u.key.within(roll) {
					continue
				}
				if k, ok := index[u.key]; ok && merged[k].score >= u.score {
					continue
				}
				merged = keepBest(merged, index, u)
				changed = true
			}
		}
	}
	return merged
}

// keepBest appends c, or replaces the candidate with the same dice if c
// scores higher.
func keepBest(result []candidate, index map[Key]int, c candidate) []candidate {
	if i, ok := index[c.key]; ok {
		if c.score > result[i].score {
			result[i] = c
		}
		return result
	}
	index[c.key] = len(result)
	return append(result, c)
}

// finalize drops empty scores, keeps the best candidate per set of consumed
// dice and orders them by score, best first.
func finalize(r Roll, candidates []candidate) []Decomposition {
	best := []candidate{}
	index := map[Key]int{}
	for _, c := range candidates {
		if c.score <= 0 {
			continue
		}
		best = keepBest(best, index, c)
	}
	slices.SortStableFunc(best, func(a, b candidate) int {
		return b.score - a.score
	})

	dice := r.Dice()
	slices.Sort(dice)
	result := make([]Decomposition, len(best))
	for i, c := range best {
		result[i] = Decomposition{
			Score:     c.score,
			Consumed:  slices.Clone(c.consumed),
			Remaining: utils.Difference(dice, c.consumed),
			Kind:      c.kind,
			Parts:     c.parts,
		}
	}
	return result
}
