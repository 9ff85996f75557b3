package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoll(t *testing.T) {
	t.Run("pads missing dice", func(t *testing.T) {
		r, err := NewRoll(3, 1, 6)

		require.NoError(t, err)
		require.Equal(t, Roll{3, 1, 6, 0, 0, 0}, r)
		require.Equal(t, []int{3, 1, 6}, r.Dice())
		require.Equal(t, 3, r.NumDice())
		require.Equal(t, Key{0, 1, 0, 1, 0, 0, 1}, r.Counts())
		require.Equal(t, "(3,1,6,0,0,0)", r.String())
	})

	t.Run("rejects too many dice", func(t *testing.T) {
		_, err := NewRoll(1, 2, 3, 4, 5, 6, 1)
		require.ErrorIs(t, err, ErrInvalidRoll)
	})

	t.Run("rejects values outside the faces", func(t *testing.T) {
		_, err := NewRoll(1, 0)
		require.ErrorIs(t, err, ErrInvalidRoll)

		_, err = NewRoll(7)
		require.ErrorIs(t, err, ErrInvalidRoll)
	})

	t.Run("must panics on invalid dice", func(t *testing.T) {
		require.Panics(t, func() { MustRoll(8) })
	})
}

func TestRollValidate(t *testing.T) {
	require.NoError(t, Roll{}.Validate())
	require.NoError(t, Roll{0, 6, 0, 1}.Validate())
	require.ErrorIs(t, Roll{0, 0, 0, 0, 0, 7}.Validate(), ErrInvalidRoll)
}

func TestKind(t *testing.T) {
	require.Equal(t, "straight", KindStraight.String())
	require.Equal(t, "multiple+individual", (KindIndividual | KindMultiple).String())
	require.Equal(t, "none", Kind(0).String())
	require.True(t, (KindIndividual | KindMultiple).Has(KindMultiple))
	require.False(t, KindIndividual.Has(KindMultiple))
}
