package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestFromStdImageNRGBA(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 30, G: 20, B: 10, A: 128})

	buf := FromStdImage(nrgba)

	assert.Equal(t, FormatBGRA8, buf.Format())
	assert.Equal(t, []byte{10, 20, 30, 128}, buf.Row(0)[4:8])
}

func TestFromStdImageOpaque(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := range 3 {
		for x := range 3 {
			rgba.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	buf := FromStdImage(rgba)

	assert.Equal(t, FormatBGR8, buf.Format())
	assert.Equal(t, []byte{50, 100, 200}, buf.Row(2)[6:9])
}

func TestFromStdImageGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 1))
	gray.SetGray(3, 0, color.Gray{Y: 77})

	buf := FromStdImage(gray)

	assert.Equal(t, FormatGray8, buf.Format())
	assert.Equal(t, []byte{0, 0, 0, 77}, buf.Data())
}

func TestToStdImageRoundTrip(t *testing.T) {
	buf, err := NewBuf(2, 1, FormatBGRA8)
	require.NoError(t, err)
	copy(buf.Row(0), []byte{10, 20, 30, 40})

	nrgba, ok := buf.ToStdImage().(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 30, G: 20, B: 10, A: 40}, nrgba.NRGBAAt(0, 0))

	back := FromStdImage(nrgba)
	assert.Equal(t, buf.Data(), back.Data())
}

func TestToStdImageGrayAlpha(t *testing.T) {
	buf, err := NewBuf(1, 1, FormatGrayAlpha8)
	require.NoError(t, err)
	copy(buf.Row(0), []byte{90, 200})

	nrgba := buf.ToStdImage().(*image.NRGBA)
	assert.Equal(t, color.NRGBA{R: 90, G: 90, B: 90, A: 200}, nrgba.NRGBAAt(0, 0))
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, src))

	buf, err := Decode(&encoded)
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Width())
	assert.Equal(t, []byte{0, 0, 255, 255}, buf.Row(1)[0:4])
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})
	var encoded bytes.Buffer
	require.NoError(t, bmp.Encode(&encoded, src))

	buf, err := Decode(&encoded)
	require.NoError(t, err)
	assert.Equal(t, FormatBGR8, buf.Format())
	assert.Equal(t, []byte{3, 2, 1, 6, 5, 4}, buf.Data())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestSavePNGAndLoad(t *testing.T) {
	buf, err := NewBuf(3, 2, FormatBGR8)
	require.NoError(t, err)
	copy(buf.Row(1)[3:], []byte{10, 20, 30})

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, buf.SavePNG(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, buf.Data(), loaded.Data())
}

func TestEncodePNG(t *testing.T) {
	buf, err := NewBuf(1, 1, FormatBGRA8)
	require.NoError(t, err)
	copy(buf.Data(), []byte{30, 20, 10, 200})

	var encoded bytes.Buffer
	require.NoError(t, buf.EncodePNG(&encoded))

	img, err := png.Decode(&encoded)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 200}, color.NRGBAModel.Convert(img.At(0, 0)))
}

func TestSavePNGBadPath(t *testing.T) {
	buf, err := NewBuf(1, 1, FormatGray8)
	require.NoError(t, err)

	err = buf.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
