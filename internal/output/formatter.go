package output

import (
	"io"

	"github.com/jeduden/proselens/internal/analysis"
)

// Report is the outcome of analyzing one passage. Exactly one of Result
// and Err is set.
type Report struct {
	Name   string
	Result *analysis.Result
	Err    error
}

// Formatter defines the interface for outputting analysis reports.
type Formatter interface {
	Format(w io.Writer, reports []Report) error
}
