package importer

import (
	"io"
	"regexp"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/PuerkitoBio/goquery"
)

var (
	paragraphTags = map[string]bool{"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}
	lineTags      = map[string]bool{
		"div": true, "tr": true, "li": true, "ul": true, "ol": true, "table": true,
		"section": true, "article": true, "header": true, "footer": true, "td": true, "th": true,
	}
	skippedTags = map[string]bool{"script": true, "style": true, "noscript": true, "head": true}

	breakRun   = regexp.MustCompile(`[\s\x00-\x02]*[\x00-\x02][\s\x00-\x02]*`)
	lineSpaces = regexp.MustCompile(`[ \t]+`)
)

// Break markers written while walking the tree. Runs of markers collapse
// into a single line break, or a blank line when a paragraph or a double
// <br> is involved.
const (
	lineBreak      = "\x00"
	paragraphBreak = "\x01"
	brBreak        = "\x02"
)

// ExtractPageText returns the visible text of a saved listing page with
// block elements on separate lines and paragraphs split by a blank line,
// the shape ParseListing expects. Empty text spans read as NULL.
func ExtractPageText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", exceptions.ErrCannotParseHTML(err)
	}
	fillEmptySpans(doc)

	var sb strings.Builder
	writeText(&sb, doc.Find("body"))

	text := breakRun.ReplaceAllStringFunc(sb.String(), func(run string) string {
		if strings.Contains(run, paragraphBreak) || strings.Count(run, brBreak) > 1 {
			return "\n\n"
		}
		return "\n"
	})
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(lineSpaces.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func writeText(sb *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			sb.WriteString(strings.ReplaceAll(node.Text(), "\n", " "))
		case name == "br":
			sb.WriteString(brBreak)
		case skippedTags[name]:
		case paragraphTags[name]:
			sb.WriteString(paragraphBreak)
			writeText(sb, node)
			sb.WriteString(paragraphBreak)
		case lineTags[name]:
			sb.WriteString(lineBreak)
			writeText(sb, node)
			sb.WriteString(lineBreak)
		default:
			writeText(sb, node)
		}
	})
}
