package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// NewProgressBar creates a consistently styled progress bar writing to w.
// Pass total >= 0; the bar shows a count and iterations per second.
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)
}
