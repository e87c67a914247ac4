package worldoftea

import (
	"html/template"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRenderMarkdown(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		given    string
		expected template.HTML
	}{
		{
			given:    "some text",
			expected: "<p>some text</p>\n",
		},
		{
			given:    "# a big title\n some text",
			expected: "<p><strong>a big title</strong></p>\n<p>some text</p>\n",
		},
		{
			given:    "### a small title\n some text",
			expected: "<p><strong>a small title</strong></p>\n<p>some text</p>\n",
		},
		{
			given:    "# abc\nfoo\n## def\nbar",
			expected: "<p><strong>abc</strong></p>\n<p>foo</p>\n<p><strong>def</strong></p>\n<p>bar</p>\n",
		},
		{
			given:    "![a cup](https://example.com/cup.png)",
			expected: "<p><a href=\"https://example.com/cup.png\">a cup</a></p>\n",
		},
		{
			given:    "see https://example.com",
			expected: "<p>see <a href=\"https://example.com\">https://example.com</a></p>\n",
		},
		{
			given:    "*so* good",
			expected: "<p><em>so</em> good</p>\n",
		},
	}

	for i, test := range tests {
		test := test
		c.Run("RenderOK_case_"+strconv.Itoa(i), func(c *qt.C) {
			c.Assert(renderMarkdown(test.given), qt.Equals, test.expected)
		})
	}

	c.Run("raw html is dropped", func(c *qt.C) {
		out := string(renderMarkdown("<script>alert(1)</script>"))
		c.Assert(out, qt.Not(qt.Contains), "<script>")
	})
}
