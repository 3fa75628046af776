package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/palettex/pkg/palette"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	previewWidth = 6
)

// colourPreview returns a solid truecolour block of the given width.
func colourPreview(c palette.Color, width int) string {
	if width <= 0 {
		width = previewWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// supportsANSIColours reports whether w is a terminal and NO_COLOR is unset.
func supportsANSIColours(w io.Writer) bool {
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// previewEnabled combines the --preview flag with terminal detection.
// forcePreview skips detection so output can be captured.
func previewEnabled(requested bool, w io.Writer) bool {
	return requested && (forcePreview || supportsANSIColours(w))
}

// forcePreview is set by tests to render previews into buffers.
var forcePreview = false
