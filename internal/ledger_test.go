package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeLedger(t *testing.T) {
	ledger := NewEdgeLedger()
	a := NewSegment(Point{0, 0}, Point{1, 0})
	b := NewSegment(Point{1, 0}, Point{1, 1})
	c := NewSegment(Point{1, 1}, Point{0, 0})

	ledger.Claim([]Segment{a, b}, "circle 0")
	assert.True(t, ledger.Claimed(a))
	assert.False(t, ledger.Claimed(c))
	assert.Equal(t, "circle 0", ledger.Owner(b))
	assert.True(t, ledger.AnyClaimed([]Segment{c, b}))
	assert.False(t, ledger.AnyClaimed([]Segment{c}))
	assert.Equal(t, 2, ledger.Len())

	t.Run("double claim", func(t *testing.T) {
		err := func() (err error) {
			defer func() { err = HandleRegularizePanicRecover(recover()) }()
			ledger.Claim([]Segment{c, a}, "polygon 0")
			return nil
		}()
		assert.Error(t, err)
		// A failed claim changes nothing
		assert.False(t, ledger.Claimed(c))
		assert.Equal(t, "circle 0", ledger.Owner(a))
	})
}
