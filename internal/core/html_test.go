package core

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestComposePages(t *testing.T) {
	result := RenderResult{
		Document: "<html>A</html>",
		Body:     "<p>B</p>",
		Styles:   "",
	}

	pages := ComposePages(result)

	assert.Equal(t, "<html>A</html>", pages.Primary())
	assert.Contains(t, pages.Constructed(), "<p>B</p>")
	assert.Contains(t, pages.Constructed(), "<style></style>")
}

func TestComposePagesEmptyDocument(t *testing.T) {
	pages := ComposePages(RenderResult{Body: "<p>B</p>"})
	assert.Equal(t, "", pages.Primary())
	assert.NotEmpty(t, pages.Constructed())
}

func TestComposePagesDeterministic(t *testing.T) {
	result := RenderResult{Document: "d", Body: "<my-header>Hi</my-header>", Styles: "my-header{color:red}"}

	first := ComposePages(result).Constructed()
	second := ComposePages(result).Constructed()

	assert.Equal(t, first, second)
}

func TestRenderConstructedPageLayout(t *testing.T) {
	page := RenderConstructedPage("<p>B</p>", "p{margin:0}")

	head, body, found := strings.Cut(page, "</head>")
	if !found {
		t.Fatalf("no </head> in page:\n%s", page)
	}

	assert.Contains(t, head, `<link rel="stylesheet" href="/static/index.css" />`)
	assert.Contains(t, head, "<style>p{margin:0}</style>")

	bodyIdx := strings.Index(body, "<p>B</p>")
	scriptIdx := strings.Index(body, `<script type="module" src="/static/index.js"></script>`)
	assert.GreaterOrEqual(t, bodyIdx, 0)
	assert.Greater(t, scriptIdx, bodyIdx, "script must follow the rendered body")
}

func TestRenderConstructedPageSnapshot(t *testing.T) {
	page := RenderConstructedPage(
		`<my-header enhanced="✨"><h1>Hello World</h1></my-header>`,
		"my-header h1{font-size:2rem}",
	)
	snaps.WithConfig(snaps.Ext(".html")).MatchStandaloneSnapshot(t, page)
}

func TestPageETag(t *testing.T) {
	a := PageETag("<html>A</html>")
	b := PageETag("<html>B</html>")

	assert.True(t, strings.HasPrefix(a, `"`) && strings.HasSuffix(a, `"`))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, PageETag("<html>A</html>"))
}
