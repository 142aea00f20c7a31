package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// ContentType is the MIME type of EncodePNG output.
const ContentType = "image/png"

// EncodePNG serializes img as PNG, keeping the alpha channel.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
