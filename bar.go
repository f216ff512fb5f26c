package printo

import (
	"github.com/schollz/progressbar/v3"
)

// activeProgress is the bar currently owning the terminal line, if any.
// Like the logger configuration it is process-wide with last-write-wins
// semantics and no locking.
var activeProgress *progressbar.ProgressBar

// AttachBar registers a bar as the active one. While a bar is attached,
// every log write clears it, writes the line and redraws the bar, so log
// output never interleaves with the bar's redraw cycle.
func AttachBar(bar *progressbar.ProgressBar) {
	activeProgress = bar
}

// DetachBar releases the active bar; subsequent writes go out directly.
func DetachBar() {
	activeProgress = nil
}

func activeBar() *progressbar.ProgressBar {
	return activeProgress
}

// NewBar builds a progress bar wired to the Logger's output stream and
// attaches it, so interleaved log calls keep the bar intact. Additional
// options are applied after the defaults and may override them.
func (l *Logger) NewBar(max int64, description string, opts ...progressbar.Option) *progressbar.ProgressBar {
	base := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(l.out),
		progressbar.OptionShowCount(),
	}
	bar := progressbar.NewOptions64(max, append(base, opts...)...)
	AttachBar(bar)
	return bar
}

// NewBar builds and attaches a progress bar on the Default logger's output.
//
// Example:
//
//	bar := printo.NewBar(int64(len(batches)), "training")
//	for _, b := range batches {
//		process(b)
//		_ = bar.Add(1)
//	}
//	_ = printo.FinishBar(bar)
func NewBar(max int64, description string, opts ...progressbar.Option) *progressbar.ProgressBar {
	return Default.NewBar(max, description, opts...)
}

// FinishBar detaches the bar and fills it to completion. Detaching first
// keeps a final log write from redrawing a bar that is done.
func FinishBar(bar *progressbar.ProgressBar) error {
	DetachBar()
	return bar.Finish()
}
