package cli

import (
	"bytes"
	"testing"
)

func TestOutputWritesWithoutColorsToBuffers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewWriterOutput(&stdout, &stderr)

	out.PrintHeader("Enhance")
	out.PrintSuccess("loaded %d elements", 2)
	out.PrintWarning("no document")
	out.PrintStep("", "GET %s", "/hello/world")
	out.PrintFile("dist/hello/world/index.html")
	out.PrintError("bind failed: %s", "in use")

	want := "Enhance\n\n" +
		"  ✓ loaded 2 elements\n" +
		"  ⚠ no document\n" +
		"  GET /hello/world\n" +
		"    dist/hello/world/index.html\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	if got := stderr.String(); got != "  ✗ bind failed: in use\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestOutputColors(t *testing.T) {
	out := NewWriterOutput(&bytes.Buffer{}, &bytes.Buffer{})
	if got := out.Green("ok"); got != "ok" {
		t.Errorf("Green() with colours off = %q", got)
	}

	out.enableColors = true
	if got := out.Red("x"); got != "\033[31mx\033[0m" {
		t.Errorf("Red() = %q", got)
	}

	out.DisableColors()
	if got := out.Yellow("w"); got != "w" {
		t.Errorf("Yellow() after DisableColors = %q", got)
	}
}
