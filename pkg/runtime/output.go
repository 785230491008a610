package runtime

import (
	"fmt"
	"io"
	"os"
)

// Printer is the single textual output channel compiled programs observe
// results through. No other I/O surface exists in this runtime.
type Printer struct {
	w io.Writer
}

// NewPrinter wraps w; a nil writer targets stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Println writes line followed by a newline.
func (p *Printer) Println(line string) {
	fmt.Fprintln(p.w, line)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
