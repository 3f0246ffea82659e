package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasic(t *testing.T) {
	out, err := ToHTML("# State minimums\n\nLiability coverage is **required**.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "State minimums") {
		t.Errorf("missing heading in output: %s", out)
	}
	if !strings.Contains(out, "<strong>required</strong>") {
		t.Errorf("missing bold text in output: %s", out)
	}
}

func TestToHTMLTables(t *testing.T) {
	src := "| State | Minimum |\n| --- | --- |\n| NH | none |\n"
	out, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %s", out)
	}
}

func TestToHTMLRawHTMLPassthrough(t *testing.T) {
	out, err := ToHTML("before\n\n<div class=\"quote-widget\">get a quote</div>\n\nafter")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `<div class="quote-widget">`) {
		t.Errorf("raw HTML block was escaped: %s", out)
	}
}
