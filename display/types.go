// Package display defines options for the interactive step-through pager.
package display

// Options configures StepThrough.
//
// Fields:
//   - Prefix — prepended to every matrix line (indentation for slides or
//     nested output). Applies to Format output inside the pager as well.
//   - Clear  — if true, the terminal is cleared (ANSI) before each step,
//     turning the walkthrough into a slide show.
//   - Prompt — the pause message printed between steps. Empty means the
//     default "press enter to continue".
//
// Example:
//
//	opts := display.DefaultOptions()
//	opts.Prefix = "    "
//	opts.Clear = true
//	err := display.StepThrough(os.Stdout, os.Stdin, a, &opts)
type Options struct {
	Prefix string
	Clear  bool
	Prompt string
}

// DefaultOptions returns the canonical pager configuration: no prefix, no
// screen clearing, the standard prompt.
func DefaultOptions() Options {
	return Options{Prompt: defaultPrompt}
}
