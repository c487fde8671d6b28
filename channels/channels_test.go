package channels_test

import (
	"testing"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the three construction failures.
func TestNew_Validation(t *testing.T) {
	_, err := channels.New()
	assert.ErrorIs(t, err, channels.ErrEmptySet)

	_, err = channels.New("A", "")
	assert.ErrorIs(t, err, channels.ErrEmptyLabel)

	_, err = channels.New("A", "B", "A")
	assert.ErrorIs(t, err, channels.ErrDuplicateLabel)
}

// TestSet_OrderAndIndex verifies that order is preserved and Names returns a copy.
func TestSet_OrderAndIndex(t *testing.T) {
	s, err := channels.New("C", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"C", "A", "B"}, s.Names())
	assert.Equal(t, "A", s.Name(1))

	i, ok := s.Index("B")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = s.Index("Z")
	assert.False(t, ok)

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "C", s.Name(0), "Names must not alias internal storage")
}

// TestSet_Match reports count and order mismatches as structural errors.
func TestSet_Match(t *testing.T) {
	s := channels.MustNew("A", "B", "C")

	assert.NoError(t, s.Match([]string{"A", "B", "C"}))
	assert.ErrorIs(t, s.Match([]string{"A", "B"}), channels.ErrStructural)
	assert.ErrorIs(t, s.Match([]string{"A", "C", "B"}), channels.ErrStructural)
	assert.ErrorIs(t, s.MatchCount(4), channels.ErrStructural)
	assert.NoError(t, s.MatchCount(3))
}

// TestStandard1020 checks the default montage and that its layout covers every label.
func TestStandard1020(t *testing.T) {
	s := channels.Standard1020()
	require.Equal(t, 19, s.Len())
	assert.Equal(t, "Fp1", s.Name(0))
	assert.Equal(t, "Pz", s.Name(18))

	l := channels.Standard1020Layout()
	assert.True(t, l.Set().Equal(s))
	for _, name := range s.Names() {
		_, ok := l.Position(name)
		assert.True(t, ok, name)
	}
	cz, _ := l.Position("Cz")
	assert.Equal(t, channels.Point{X: 0, Y: 0}, cz)
}

// TestNewLayout_Mismatch rejects missing and unknown labels.
func TestNewLayout_Mismatch(t *testing.T) {
	s := channels.MustNew("A", "B")

	_, err := channels.NewLayout(s, map[string]channels.Point{"A": {}})
	assert.ErrorIs(t, err, channels.ErrLayoutMismatch)

	_, err = channels.NewLayout(s, map[string]channels.Point{"A": {}, "B": {}, "C": {}})
	assert.ErrorIs(t, err, channels.ErrLayoutMismatch)

	l, err := channels.NewLayout(s, map[string]channels.Point{"A": {X: 1}, "B": {Y: 2}})
	require.NoError(t, err)
	assert.Len(t, l.Positions(), 2)
}
