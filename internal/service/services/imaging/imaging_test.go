package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestDownscale(t *testing.T) {
	t.Run("oversized image is constrained keeping aspect ratio", func(t *testing.T) {
		out := Downscale(encodePNG(t, 1600, 400))

		decoded, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 800, decoded.Bounds().Dx())
		assert.Equal(t, 200, decoded.Bounds().Dy())
	})

	t.Run("tall image scales on the height", func(t *testing.T) {
		out := Downscale(encodePNG(t, 400, 1600))

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 800, decoded.Bounds().Dy())
	})

	t.Run("image inside the box passes through untouched", func(t *testing.T) {
		in := encodePNG(t, 600, 400)

		assert.Equal(t, in, Downscale(in))
	})

	t.Run("undecodable bytes pass through untouched", func(t *testing.T) {
		in := []byte("not an image at all")

		assert.Equal(t, in, Downscale(in))
	})
}
