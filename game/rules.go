package game

// Rules is the scoring table the scorer applies.
type Rules interface {
	StraightScore() int
	// MultipleScore is the score of count dice showing face, or 0 below the minimum.
	MultipleScore(face, count int) int
	// SingleScore is the score of one die showing face on its own, or 0.
	SingleScore(face int) int
	MinMultiple() int
}
