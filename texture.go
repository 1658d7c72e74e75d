package voxen

import (
	"bytes"
	"image"
	_ "image/jpeg" // Ensure decoders are present
	_ "image/png"
	"math"
	"net/http"
	"time"

	"github.com/nfnt/resize"
)

// MaxTextureSize caps loaded texture dimensions; larger images are
// scaled down on load to keep per-fragment sampling cache friendly.
const MaxTextureSize = 2048

// WrapMode controls how coordinates outside [0,1] sample.
type WrapMode int

const (
	// WrapRepeat tiles the texture (the default).
	WrapRepeat WrapMode = iota
	// WrapClamp clamps to the edge texel.
	WrapClamp
)

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
	Wrap   WrapMode
}

func NewImageTexture(im image.Image) *ImageTexture {
	if im.Bounds().Dx() > MaxTextureSize || im.Bounds().Dy() > MaxTextureSize {
		im = resize.Thumbnail(MaxTextureSize, MaxTextureSize, im, resize.Bilinear)
	}
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) Texture {
	client := http.Client{
		Timeout: 10 * time.Second, // Prevent hanging
	}
	resp, err := client.Get(url)
	if err != nil || resp.StatusCode != 200 {
		return nil
	}
	defer resp.Body.Close()

	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func TexFromBytes(data []byte) Texture {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

// wrap maps a coordinate into [0,1) per the wrap mode.
func (t *ImageTexture) wrap(x float64) float64 {
	switch t.Wrap {
	case WrapClamp:
		return Clamp(x, 0, 1)
	default:
		return x - math.Floor(x)
	}
}

func (t *ImageTexture) Sample(u, v float64) Color {
	u = t.wrap(u)
	v = t.wrap(v)
	// Flip V for standard UV coords
	v = 1 - v

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Bounds check
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = t.wrap(u)
	v = t.wrap(v)
	v = 1 - v

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	at := func(x, y int) Color {
		x = ClampInt(x, 0, t.Width-1)
		y = ClampInt(y, 0, t.Height-1)
		return MakeColor(t.Image.At(x, y))
	}

	c00 := at(x0, y0)
	c10 := at(x0+1, y0)
	c01 := at(x0, y0+1)
	c11 := at(x0+1, y0+1)
	top := c00.Lerp(c10, dx)
	bottom := c01.Lerp(c11, dx)
	return top.Lerp(bottom, dy)
}

// SolidTexture samples the same color everywhere; handy for tests and
// untextured atlas slots.
type SolidTexture struct {
	Color Color
}

func (t *SolidTexture) Sample(u, v float64) Color {
	return t.Color
}

func (t *SolidTexture) BilinearSample(u, v float64) Color {
	return t.Color
}
