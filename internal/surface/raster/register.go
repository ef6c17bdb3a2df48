package raster

import (
	"io"

	"github.com/vovakirdan/polyscatter/internal/registry"
)

func init() {
	registry.Register(registry.FormatInfo{
		ID:        "png",
		Title:     "PNG image",
		Extension: ".png",
	}, func(width, height int) registry.Output {
		return output{New(width, height)}
	})
}

// output adapts Surface to registry.Output.
type output struct {
	*Surface
}

func (o output) Encode(w io.Writer) error {
	return o.EncodePNG(w)
}
