package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"

	"golang.org/x/image/draw"
)

const (
	// Uploaded product images are constrained to this box before storage to
	// keep row payloads small.
	MaxWidth  = 800
	MaxHeight = 800

	jpegQuality = 80
)

// Downscale decodes the image, constrains it to MaxWidth×MaxHeight keeping
// the aspect ratio, and re-encodes it as JPEG. Input that cannot be decoded
// or that already fits the box is returned unchanged; the caller always gets
// usable bytes back.
func Downscale(data []byte) []byte {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Image decode failed, storing original bytes", "error", err)
		return data
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxWidth && h <= MaxHeight {
		return data
	}

	scale := float64(MaxWidth) / float64(w)
	if s := float64(MaxHeight) / float64(h); s < scale {
		scale = s
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		slog.Warn("Image re-encode failed, storing original bytes", "error", err)
		return data
	}

	return buf.Bytes()
}
