package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuf(t *testing.T) {
	b, err := NewBuf(4, 3, FormatBGR8)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 3, b.Channels())
	assert.Len(t, b.Data(), 36)
}

func TestNewBufErrors(t *testing.T) {
	_, err := NewBuf(0, 3, FormatGray8)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBuf(3, -1, FormatGray8)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBuf(3, 3, Format(9))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRowAliasesData(t *testing.T) {
	b, err := NewBuf(3, 2, FormatBGRA8)
	require.NoError(t, err)

	copy(b.Row(1)[8:], []byte{10, 20, 30, 40})

	assert.Len(t, b.Row(0), 12)
	assert.Equal(t, []byte{10, 20, 30, 40}, b.Data()[20:24])
}

func TestFlipVertical(t *testing.T) {
	tests := []struct {
		name   string
		height int
	}{
		{"even", 4},
		{"odd", 3},
		{"single row", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuf(2, tt.height, FormatGray8)
			require.NoError(t, err)
			for y := range tt.height {
				row := b.Row(y)
				row[0], row[1] = byte(y), byte(y+100)
			}

			b.FlipVertical()

			for y := range tt.height {
				want := byte(tt.height - 1 - y)
				assert.Equal(t, []byte{want, want + 100}, b.Row(y))
			}
		})
	}
}
