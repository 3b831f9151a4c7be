package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/gomdless/pkg/layout"
)

// Printer writes a laid-out document to a writer, one display line per
// output line.
type Printer struct {
	out    io.Writer
	styles *Styles
}

// NewPrinter creates a printer using the given styles.
func NewPrinter(out io.Writer, styles *Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

// Print writes every display line of the result.
func (p *Printer) Print(res *layout.Result) error {
	for _, line := range res.Lines {
		if err := p.printLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printLine(line layout.Line) error {
	for _, sp := range line.Spans {
		if _, err := io.WriteString(p.out, p.styles.For(sp.Style).Render(sp.Text)); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	if _, err := io.WriteString(p.out, "\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
