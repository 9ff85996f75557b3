package game

import "hotdice/meta"

// StandardRules scores a straight at 1500, three of a kind at the face's
// base score doubling for every extra die, and single 1s and 5s.
type StandardRules struct {
	Straight     int
	ThreeOfAKind [meta.FACE_COUNT + 1]int // Indexed by face
	Singles      [meta.FACE_COUNT + 1]int // Indexed by face
	Minimum      int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Straight:     1500,
		ThreeOfAKind: [meta.FACE_COUNT + 1]int{0, 1000, 200, 300, 400, 500, 600},
		Singles:      [meta.FACE_COUNT + 1]int{0, 100, 0, 0, 0, 50, 0},
		Minimum:      meta.MIN_MULTIPLE,
	}
}

func (sr *StandardRules) StraightScore() int {
	return sr.Straight
}

func (sr *StandardRules) MultipleScore(face, count int) int {
	if !validFace(face) || count < sr.Minimum {
		return 0
	}
	return sr.ThreeOfAKind[face] << (count - sr.Minimum)
}

func (sr *StandardRules) SingleScore(face int) int {
	if !validFace(face) {
		return 0
	}
	return sr.Singles[face]
}

func (sr *StandardRules) MinMultiple() int {
	return sr.Minimum
}

func validFace(face int) bool {
	return face >= 1 && face <= meta.FACE_COUNT
}
