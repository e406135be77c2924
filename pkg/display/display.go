// Package display is the pure, stateless adapter that maps grid snapshots
// to visual output. It is the only place that knows which color belongs to
// which disease state; the kernel itself has no notion of presentation.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/aretw0/contagion/pkg/domain"
)

// Fixed state colors. Susceptible blue, latent yellow, infected red,
// recovered green.
var colors = [4]color.RGBA{
	domain.Susceptible: {R: 55, G: 55, B: 200, A: 255},
	domain.Latent:      {R: 255, G: 255, B: 55, A: 255},
	domain.Infected:    {R: 200, G: 55, B: 55, A: 255},
	domain.Recovered:   {R: 55, G: 200, B: 55, A: 255},
}

// Color maps a disease state to its fixed display color. A state outside
// the four valid values means the kernel broke its own invariant; the error
// wraps ErrInvalidDisplayState and should be treated as fatal.
func Color(s domain.State) (color.RGBA, error) {
	if !s.Valid() {
		return color.RGBA{}, fmt.Errorf("%w: %d", domain.ErrInvalidDisplayState, uint8(s))
	}
	return colors[s], nil
}

// Image renders a grid to an RGBA image, scale pixels per cell.
func Image(g *domain.Grid, scale int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := Color(g.At(x, y))
			if err != nil {
				return nil, err
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img, nil
}

// EncodeGIF writes frames as an animated GIF. delay is the inter-frame
// delay in hundredths of a second.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	out := &gif.GIF{}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.Draw(paletted, bounds, frame, bounds.Min, draw.Src)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}
