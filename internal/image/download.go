package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/youruser/outfitapp/internal/util"

	// extra formats served by the icon CDNs
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Size is a target width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// Request describes one remote image to fetch. A nil Size keeps the decoded dimensions.
type Request struct {
	URL  string
	Size *Size
}

// FetchError records why a single image could not be produced.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves and decodes one remote image.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*image.NRGBA, error)
}

// HTTPFetcher downloads images over HTTP.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given timeout in seconds.
func NewHTTPFetcher(timeoutSeconds int) *HTTPFetcher {
	return &HTTPFetcher{Client: util.NewHTTPClient(timeoutSeconds)}
}

// Fetch downloads an image from req.URL, decodes it to NRGBA and resizes it when req.Size is set.
// Every failure is returned as a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (*image.NRGBA, error) {
	body, err := util.GetBytes(ctx, f.Client, req.URL)
	if err != nil {
		fe := &FetchError{URL: req.URL, Err: err}
		if se, ok := err.(*util.StatusError); ok {
			fe.StatusCode = se.StatusCode
		}
		return nil, fe
	}
	img, err := DecodeImage(body, req.Size)
	if err != nil {
		return nil, &FetchError{URL: req.URL, Err: err}
	}
	return img, nil
}

// DecodeImage decodes any registered format into NRGBA, resizing when size is set.
func DecodeImage(b []byte, size *Size) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if size != nil {
		return Resize(img, size.Width, size.Height), nil
	}
	return imaging.Clone(img), nil
}

// Resize scales img to exactly w x h with a bicubic filter.
func Resize(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.CatmullRom)
}
