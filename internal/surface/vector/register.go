package vector

import (
	"io"

	"github.com/vovakirdan/polyscatter/internal/registry"
)

func init() {
	registry.Register(registry.FormatInfo{
		ID:        "svg",
		Title:     "SVG document",
		Extension: ".svg",
	}, func(width, height int) registry.Output {
		return output{New(width, height)}
	})
}

// output adapts Surface to registry.Output.
type output struct {
	*Surface
}

func (o output) Encode(w io.Writer) error {
	return o.EncodeSVG(w)
}

// Close is a no-op; the document lives in memory.
func (o output) Close() error {
	return nil
}
