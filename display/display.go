package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rowsteps/eliminate"
	"github.com/katalvlaran/rowsteps/matrix"
)

// defaultPrompt is the pause message StepThrough prints between steps.
const defaultPrompt = "press enter to continue"

// ansiClear resets the terminal: erase display, cursor home.
const ansiClear = "\x1b[2J\x1b[H"

var (
	// ErrNilWriter indicates a nil output writer was passed to StepThrough.
	ErrNilWriter = errors.New("display: nil writer")

	// ErrBadSplit indicates an augmentation split outside (0, cols).
	ErrBadSplit = errors.New("display: split column out of range")
)

// Format renders m as aligned text, one matrix row per line, each line
// starting with prefix. Entries render exactly (RatString) and are
// right-aligned per column, so fractions and negatives line up.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c) with two passes (width scan, then render).
func Format(m *matrix.Dense, prefix string) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("Format: %w", err)
	}

	cells, widths := measure(m)

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteString(prefix)
		b.WriteString("[")
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString("  ")
			}
			pad(&b, cells[i][j], widths[j])
		}
		b.WriteString("]\n")
	}

	return b.String(), nil
}

// FormatAugmented renders m like Format but draws a vertical bar before
// column split, marking the subdivision of an augmented system.
// split must satisfy 0 < split < m.Cols().
//
// Errors: matrix.ErrNilMatrix, ErrBadSplit.
// Complexity: O(r*c).
func FormatAugmented(m *matrix.Dense, split int, prefix string) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("FormatAugmented: %w", err)
	}
	if split <= 0 || split >= m.Cols() {
		return "", fmt.Errorf("FormatAugmented: %w", ErrBadSplit)
	}

	cells, widths := measure(m)

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteString(prefix)
		b.WriteString("[")
		for j := 0; j < m.Cols(); j++ {
			if j == split {
				b.WriteString(" | ")
			} else if j > 0 {
				b.WriteString("  ")
			}
			pad(&b, cells[i][j], widths[j])
		}
		b.WriteString("]\n")
	}

	return b.String(), nil
}

// measure renders every entry once and records per-column widths.
func measure(m *matrix.Dense) ([][]string, []int) {
	rows, cols := m.Rows(), m.Cols()
	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j) // bounds fixed by the loop ranges
			s := v.RatString()
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	return cells, widths
}

// pad writes s right-aligned into width columns.
func pad(b *strings.Builder, s string, width int) {
	for n := width - len(s); n > 0; n-- {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

// StepThrough replays the elimination of m on w as an interactive
// walkthrough: the starting matrix, then for every step its description
// followed by the matrix it produces, pausing for a line from in between
// steps. A nil in disables pausing, which makes the pager usable for
// non-interactive transcripts (and tests).
//
// The operation trail comes from eliminate.Reduce; descriptions from
// eliminate.Classify. All arithmetic is the recorded replay — StepThrough
// adds no semantics of its own.
//
// Errors: ErrNilWriter, matrix.ErrNilMatrix, plus any write error from w.
// Complexity: O(steps · r²·c) for the replay.
func StepThrough(w io.Writer, in io.Reader, m *matrix.Dense, opts *Options) error {
	if w == nil {
		return fmt.Errorf("StepThrough: %w", ErrNilWriter)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("StepThrough: %w", err)
	}

	// Apply options or defaults.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
		if cfg.Prompt == "" {
			cfg.Prompt = defaultPrompt
		}
	}

	ops, err := eliminate.Reduce(m)
	if err != nil {
		return fmt.Errorf("StepThrough: %w", err)
	}

	var pause *bufio.Scanner
	if in != nil {
		pause = bufio.NewScanner(in)
	}

	// Show the starting point.
	if err = writeMatrix(w, m, &cfg, "start:"); err != nil {
		return err
	}

	cur := m
	last := len(ops) - 1
	for i := range ops {
		if pause != nil {
			if _, err = fmt.Fprintf(w, "%s\n", cfg.Prompt); err != nil {
				return fmt.Errorf("StepThrough: %w", err)
			}
			pause.Scan() // block until the user sends a line (or EOF)
		}

		// ops[last-i] is the next operation in chronological order.
		e := ops[last-i]
		step, err := eliminate.Classify(e)
		if err != nil {
			return fmt.Errorf("StepThrough: %w", err)
		}
		if cur, err = matrix.Mul(e, cur); err != nil {
			return fmt.Errorf("StepThrough: %w", err)
		}
		header := fmt.Sprintf("step %d: %s", i+1, step.Describe())
		if err = writeMatrix(w, cur, &cfg, header); err != nil {
			return err
		}
	}

	return nil
}

// writeMatrix emits an optional screen clear, a header line, and the
// formatted matrix.
func writeMatrix(w io.Writer, m *matrix.Dense, cfg *Options, header string) error {
	if cfg.Clear {
		if _, err := io.WriteString(w, ansiClear); err != nil {
			return fmt.Errorf("StepThrough: %w", err)
		}
	}
	body, err := Format(m, cfg.Prefix)
	if err != nil {
		return fmt.Errorf("StepThrough: %w", err)
	}
	if _, err = fmt.Fprintf(w, "%s%s\n%s", cfg.Prefix, header, body); err != nil {
		return fmt.Errorf("StepThrough: %w", err)
	}

	return nil
}
