package web

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

const (
	progressWidth  = 320
	progressHeight = 28
	progressRadius = 6

	colorTrack = "#44475A"
	colorFill  = "#50FA7B"
	colorLabel = "#F8F8F2"
)

// writeProgressSVG draws the frame's progress as a rounded bar with the
// "i / n" counter centered on it.
func writeProgressSVG(w io.Writer, f tutorial.Frame) {
	filled := int(f.Progress * progressWidth)
	if filled < progressRadius*2 && f.Total > 0 {
		filled = progressRadius * 2
	}

	canvas := svg.New(w)
	canvas.Start(progressWidth, progressHeight)
	canvas.Title(fmt.Sprintf("Section %s", f.Counter))
	canvas.Roundrect(0, 0, progressWidth, progressHeight, progressRadius, progressRadius,
		fmt.Sprintf("fill:%s", colorTrack))
	canvas.Roundrect(0, 0, filled, progressHeight, progressRadius, progressRadius,
		fmt.Sprintf("fill:%s", colorFill))
	canvas.Text(progressWidth/2, progressHeight/2+5, f.Counter,
		fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;text-anchor:middle;font-weight:bold", colorLabel))
	canvas.End()
}
