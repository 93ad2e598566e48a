package cli

import (
	"fmt"
	"io"
	"os"
)

// Output prints human-readable startup diagnostics. Colours are enabled only
// when stdout is a terminal.
type Output struct {
	stdout       io.Writer
	stderr       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		enableColors: isTerminal(os.Stdout),
	}
}

func NewWriterOutput(stdout, stderr io.Writer) *Output {
	return &Output{
		stdout:       stdout,
		stderr:       stderr,
		enableColors: isTerminal(stdout),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) paint(code, text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (o *Output) Green(text string) string  { return o.paint("32", text) }
func (o *Output) Yellow(text string) string { return o.paint("33", text) }
func (o *Output) Red(text string) string    { return o.paint("31", text) }
func (o *Output) Gray(text string) string   { return o.paint("90", text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.stdout, msg)
	fmt.Fprintln(o.stdout)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	fmt.Fprintf(o.stdout, prefix+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  "+o.Green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  "+o.Yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stderr, "  "+o.Red("✗ ")+"%s\n", formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.stdout, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.stdout, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
