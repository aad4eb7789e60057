package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEncodePNG(t *testing.T, width, height int) *bytes.Reader {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, image.NewNRGBA(image.Rect(0, 0, width, height))))
	return bytes.NewReader(b.Bytes())
}

func TestDefaultProcessor_Fit(t *testing.T) {
	t.Parallel()
	p := NewProcessor(Config{
		MaxPixels:    500 * 500,
		Concurrency:  1,
		PhotoMaxSize: image.Pt(100, 100),
	})

	t.Run("downscales large image", func(t *testing.T) {
		img, err := p.Fit(mustEncodePNG(t, 400, 200), 100, 100)
		require.NoError(t, err)
		size := img.Bounds().Size()
		assert.LessOrEqual(t, size.X, 100)
		assert.LessOrEqual(t, size.Y, 100)
	})

	t.Run("keeps small image as is", func(t *testing.T) {
		img, err := p.Fit(mustEncodePNG(t, 50, 40), 100, 100)
		require.NoError(t, err)
		assert.Equal(t, image.Pt(50, 40), img.Bounds().Size())
	})

	t.Run("pixel limit", func(t *testing.T) {
		_, err := p.Fit(mustEncodePNG(t, 600, 600), 100, 100)
		assert.ErrorIs(t, err, ErrPixelLimitExceeded)
	})

	t.Run("invalid src", func(t *testing.T) {
		_, err := p.Fit(bytes.NewReader([]byte("not an image")), 100, 100)
		assert.ErrorIs(t, err, ErrInvalidImageSrc)
	})
}

func TestDefaultProcessor_Photo(t *testing.T) {
	t.Parallel()
	p := NewProcessor(Config{
		MaxPixels:    500 * 500,
		Concurrency:  1,
		PhotoMaxSize: image.Pt(64, 64),
	})

	img, err := p.Photo(mustEncodePNG(t, 400, 200))
	require.NoError(t, err)
	size := img.Bounds().Size()
	assert.LessOrEqual(t, size.X, 64)
	assert.LessOrEqual(t, size.Y, 64)
}

func TestGeneratePlaceholder(t *testing.T) {
	t.Parallel()
	img := GeneratePlaceholder(640, 480)
	assert.Equal(t, image.Pt(640, 480), img.Bounds().Size())

	r, err := EncodePNG(img)
	require.NoError(t, err)

	decoded, err := png.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(640, 480), decoded.Bounds().Size())
}
