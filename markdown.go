package worldoftea

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// commentFlattener keeps comments from looking like page content: headings become
// bold paragraphs and images become plain links.
type commentFlattener struct{}

func (f *commentFlattener) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	var headings []*ast.Heading
	var images []*ast.Image

	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			headings = append(headings, v)
		case *ast.Image:
			images = append(images, v)
		}
		return ast.WalkContinue, nil
	})

	for _, h := range headings {
		strong := ast.NewEmphasis(2)
		moveChildren(h, strong)
		p := ast.NewParagraph()
		p.AppendChild(p, strong)
		h.Parent().ReplaceChild(h.Parent(), h, p)
	}

	for _, img := range images {
		link := ast.NewLink()
		link.Destination = img.Destination
		link.Title = img.Title
		moveChildren(img, link)
		img.Parent().ReplaceChild(img.Parent(), img, link)
	}
}

func moveChildren(from ast.Node, to ast.Node) {
	for c := from.FirstChild(); c != nil; {
		next := c.NextSibling()
		to.AppendChild(to, c)
		c = next
	}
}

var flattener = commentFlattener{}
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.NewLinkify(
			extension.WithLinkifyAllowedProtocols([][]byte{
				[]byte("http:"),
				[]byte("https:"),
			}),
		),
	),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.PrioritizedValue{Value: &flattener, Priority: 100}),
	),
)

// renderMarkdown renders a comment text. Raw HTML is omitted.
func renderMarkdown(body string) template.HTML {
	buf := bytes.NewBufferString("")
	err := md.Convert([]byte(body), buf)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}

	return template.HTML(buf.String())
}
