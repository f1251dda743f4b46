package output

import (
	"errors"
	"io"

	"github.com/jeduden/proselens/internal/metrics"
)

// TextFormatter outputs reports in the human-readable layout.
// When Color is true, section headings are printed in cyan and file
// names in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each report in turn. File names are printed as a banner
// only when there is more than one report.
func (f *TextFormatter) Format(w io.Writer, reports []Report) error {
	s := &Sections{W: w, Color: f.Color}
	for i, rep := range reports {
		if len(reports) > 1 {
			if i > 0 {
				s.Printf("\n")
			}
			if f.Color {
				s.Printf("\033[33m==> %s <==\033[0m\n", rep.Name)
			} else {
				s.Printf("==> %s <==\n", rep.Name)
			}
		}
		switch {
		case errors.Is(rep.Err, metrics.ErrNoContent):
			s.NoContent()
		case rep.Err != nil:
			s.Printf("error: %v\n", rep.Err)
		default:
			s.Full(rep.Result)
		}
	}
	return s.Err
}
