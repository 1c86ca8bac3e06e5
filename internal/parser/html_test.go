package parser

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestHTMLParser_HeadingsAndParagraphs(t *testing.T) {
	src := `<html><head><title>T</title></head><body>
<nav>skip me</nav>
<h1>Annual   Report</h1>
<p>Opening remarks.</p>
<h2>Revenue</h2>
<ul><li>Item one</li></ul>
<script>var x = 1;</script>
</body></html>`
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := buildHTML(root, "r.html")

	items, _ := doc.Outline()
	if len(items) != 2 {
		t.Fatalf("expected 2 outline items, got %d", len(items))
	}
	if items[0].Title != "Annual Report" || items[0].Depth != 1 {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Title != "Revenue" || items[1].Depth != 2 {
		t.Errorf("unexpected second item %+v", items[1])
	}

	page, _ := doc.Page(1)
	text := page.PlainText()
	if strings.Contains(text, "skip me") || strings.Contains(text, "var x") {
		t.Errorf("expected nav and script to be skipped, got %q", text)
	}
	if !strings.Contains(text, "Item one") {
		t.Errorf("expected list item text, got %q", text)
	}
}
