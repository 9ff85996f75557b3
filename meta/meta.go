// meta/meta.go
package meta

// DICE_COUNT defines the number of dice in a full roll.
const DICE_COUNT = 6

// FACE_COUNT defines the number of faces on each die.
const FACE_COUNT = 6

// MIN_MULTIPLE defines how many dice of one face make a multiple.
const MIN_MULTIPLE = 3

// WINNING_SCORE defines the default total that ends a simulated game.
const WINNING_SCORE = 10000

// MAX_TURNS caps a simulated game so a policy that never banks cannot loop forever.
const MAX_TURNS = 5000
