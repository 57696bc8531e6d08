package shaderuid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testUID struct {
	Format  uint32
	Mode    uint32
	Scratch uint32
}

func (testUID) IdentityRange() (int, int) { return 0, 8 }

type wholeUID struct {
	A uint16
	B uint8
}

type badRange struct{ X uint32 }

func (badRange) IdentityRange() (int, int) { return 2, 4 }

func TestNewEncodesLittleEndian(t *testing.T) {
	u, err := New(testUID{Format: 0x04030201, Mode: 5, Scratch: 9})
	require.NoError(t, err)
	require.Equal(t, 12, u.Size())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 0, 0, 0, 9, 0, 0, 0}, u.Bytes())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 0, 0, 0}, u.Identity())
	require.Equal(t, testUID{Format: 0x04030201, Mode: 5, Scratch: 9}, u.Data())
}

func TestNewWholePayloadWithoutRanger(t *testing.T) {
	u, err := New(wholeUID{A: 0x0102, B: 3})
	require.NoError(t, err)
	require.Equal(t, []byte{2, 1, 3}, u.Identity())
}

func TestNewRejectsVariableSize(t *testing.T) {
	_, err := New(struct{ S []byte }{})
	require.ErrorIs(t, err, ErrNotFixedSize)

	_, err = New("text")
	require.ErrorIs(t, err, ErrNotFixedSize)

	require.Panics(t, func() { MustNew(map[int]int{}) })
}

func TestNewRejectsBadRange(t *testing.T) {
	_, err := New(badRange{})
	require.ErrorIs(t, err, ErrRange)
}

func TestEqualityIgnoresScratch(t *testing.T) {
	a := MustNew(testUID{Format: 1, Mode: 0, Scratch: 1})
	b := MustNew(testUID{Format: 1, Mode: 0, Scratch: 2})
	c := MustNew(testUID{Format: 1, Mode: 0, Scratch: 3})
	d := MustNew(testUID{Format: 2})

	// reflexive
	require.True(t, a.Equal(a))
	// symmetric
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	// transitive
	require.True(t, b.Equal(c))
	require.True(t, a.Equal(c))

	require.False(t, a.Equal(d))
	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), d.Key())
}

func TestEqualUIDsHashEqual(t *testing.T) {
	a := MustNew(testUID{Format: 7, Scratch: 100})
	b := MustNew(testUID{Format: 7, Scratch: 200})
	require.Equal(t, a.Hash(), b.Hash())
	// cached value is stable
	require.Equal(t, a.Hash(), a.Hash())

	zero := MustNew(testUID{})
	require.Equal(t, zero.Hash(), MustNew(testUID{Scratch: 1}).Hash())
}

func TestCompare(t *testing.T) {
	a := MustNew(testUID{Format: 1})
	b := MustNew(testUID{Format: 2})
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(MustNew(testUID{Format: 1, Scratch: 5})))
}

func TestWordsPadsLastWord(t *testing.T) {
	u := MustNew(wholeUID{A: 0x0102, B: 3})
	require.Equal(t, []uint32{0x00030102}, u.Words())

	v := MustNew(testUID{Format: 4, Mode: 1, Scratch: 2})
	require.Equal(t, []uint32{4, 1, 2}, v.Words())
}
