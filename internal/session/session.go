// Package session runs the interactive banner, menu and prompt flow over
// an io.Reader and io.Writer.
package session

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/jeduden/proselens/internal/analysis"
	"github.com/jeduden/proselens/internal/log"
	"github.com/jeduden/proselens/internal/metrics"
	"github.com/jeduden/proselens/internal/output"
)

// Menu selections.
const (
	SelectCustom = 1
	SelectSample = 2
)

const progressSteps = 6

// Session is one interactive run. It reads the selection and the passage
// from In and writes everything to Out.
type Session struct {
	In      io.Reader
	Out     io.Writer
	Version string
	Options analysis.Options
	Color   bool
	// Pause is called after each progress step. Nil means no pause.
	Pause func()
	Log   *log.Logger

	in *bufio.Reader
	w  *output.Sections
}

// Run executes a single pass through the chosen path. Bad or missing
// input falls back to the demonstration; the only errors returned are
// write errors on Out.
func (s *Session) Run() error {
	s.in = bufio.NewReader(s.In)
	s.w = &output.Sections{W: s.Out, Color: s.Color}

	s.banner()
	sel := s.menu()
	s.Log.Printf("selection: %d", sel)

	if sel != SelectCustom {
		s.w.Printf("\nDEMONSTRATION MODE ACTIVATED\n")
		s.demonstrate()
		s.footer()
		return s.w.Err
	}

	s.w.Printf("\nUSER INPUT MODE ACTIVATED\n")
	passage := s.readPassage()
	if strings.TrimSpace(passage) == "" {
		s.w.Printf("NOTICE: No input provided. Switching to demonstration mode.\n")
		s.demonstrate()
		s.footer()
		return s.w.Err
	}

	s.analyzeCustom(passage)
	s.footer()
	return s.w.Err
}

func (s *Session) banner() {
	rule := strings.Repeat("=", 65)
	s.w.Printf("%s\n", rule)
	s.w.Printf("    PROSELENS: LANGUAGE IMPROVEMENT & PASSAGE ANALYSIS SYSTEM\n")
	s.w.Printf("    Version: %s\n", s.Version)
	s.w.Printf("    Purpose: Text Analysis and Writing Enhancement Tool\n")
	s.w.Printf("%s\n\n", rule)
}

// menu prints the options and reads one integer. Unparsable input and
// EOF return 0.
func (s *Session) menu() int {
	s.w.Printf("ANALYSIS OPTIONS AVAILABLE:\n")
	s.w.Printf("%d. Analyze custom text passage (user input)\n", SelectCustom)
	s.w.Printf("%d. Demonstrate with sample passage analysis\n", SelectSample)
	s.w.Printf("%s\n", strings.Repeat("-", 45))
	s.w.Printf("Please enter selection (1 or 2): ")

	line, _ := s.in.ReadString('\n')
	return leadingInt(line)
}

// leadingInt parses the optionally signed digits at the start of the
// first field of line, so "1abc" yields 1. It returns 0 when there are
// none.
func leadingInt(line string) int {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}
	f := fields[0]
	end := 0
	if strings.HasPrefix(f, "+") || strings.HasPrefix(f, "-") {
		end = 1
	}
	digits := end
	for end < len(f) && f[end] >= '0' && f[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(f[:end])
	if err != nil {
		return 0
	}
	return n
}

// readPassage reads lines until an empty line that follows some content,
// or EOF. Leading empty lines are skipped. Lines are joined by a space
// and surrounding whitespace is kept, since it counts toward the passage
// length.
func (s *Session) readPassage() string {
	s.w.Printf("INPUT REQUEST: Please enter the text passage for analysis\n")
	s.w.Printf("INSTRUCTION: Type the complete passage and press Enter twice when finished\n")
	s.w.Printf("%s\n", strings.Repeat("-", 50))

	var lines []string
	for {
		line, err := s.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" && len(lines) > 0 && err == nil {
			break
		}
		if line != "" || len(lines) > 0 {
			lines = append(lines, line)
		}
		if err != nil {
			break
		}
	}
	return strings.Join(lines, " ")
}

func (s *Session) progress(step int) {
	filled := step * 20 / progressSteps
	s.w.Printf("Processing: [%s%s] %d%% Complete\n",
		strings.Repeat("█", filled), strings.Repeat("░", 20-filled), step*100/progressSteps)
	if s.Pause != nil {
		s.Pause()
	}
}

func (s *Session) analyzeCustom(passage string) {
	s.w.Printf("\nINITIATING COMPREHENSIVE TEXT ANALYSIS...\n")
	for step := 1; step <= progressSteps; step++ {
		s.progress(step)
	}
	s.w.Printf("\nANALYSIS COMPLETE - Generating Professional Results...\n")

	r, err := analysis.Analyze(passage, s.Options)
	if err != nil {
		s.report(err)
		return
	}
	s.Log.Printf("tokens: %d, score: %.4f", r.Metrics.TotalCount, r.Score)
	s.w.Full(r)
}

// demonstrate analyzes the built-in passage without the progress display,
// chart, vocabulary sample or closing summary.
func (s *Session) demonstrate() {
	s.w.Printf("DEMONSTRATION MODE: Analyzing sample passage for educational purposes\n")
	s.w.Printf("%s\n", strings.Repeat("-", 60))
	s.w.Printf("SAMPLE PASSAGE FOR ANALYSIS:\n")
	s.w.Printf("\"%s\"\n", analysis.SamplePassage)

	r, err := analysis.Analyze(analysis.SamplePassage, s.Options)
	if err != nil {
		s.report(err)
		return
	}
	s.w.Metrics(r.Metrics)
	s.w.Sentences(r.Metrics)
	s.w.Score(r.Score)
	s.w.Recommendations(r.Recommendation)
}

func (s *Session) report(err error) {
	if errors.Is(err, metrics.ErrNoContent) {
		s.w.NoContent()
		return
	}
	s.w.Printf("ERROR: %v\n", err)
}

func (s *Session) footer() {
	rule := strings.Repeat("=", 60)
	s.w.Printf("\n%s\n", rule)
	s.w.Printf("SYSTEM STATUS: Application execution completed successfully\n")
	s.w.Printf("TERMINATION: All analysis modules processed without errors\n")
	s.w.Printf("%s\n", rule)
}
