package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText normalizes a scraped string: non-printable runes are dropped,
// surrounding whitespace is trimmed and inner runs of whitespace are
// collapsed to a single space.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

var blockTags = map[string]bool{
	"div": true, "p": true, "li": true, "ul": true, "ol": true,
	"table": true, "tr": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// BlockText returns the text of a selection with each block-level element
// on its own line. Empty lines are dropped. This keeps multi-line info
// blocks (one fact per <div>) splittable on '\n' regardless of how the
// source formats its markup.
func BlockText(sel *goquery.Selection) string {
	var lines []string
	for _, node := range sel.Nodes {
		collectBlockText(node, &lines)
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = CleanText(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func collectBlockText(node *html.Node, lines *[]string) {
	if node == nil {
		return
	}
	if !hasBlockChild(node) {
		*lines = append(*lines, GetText(node))
		return
	}
	child := node.FirstChild
	for child != nil {
		collectBlockText(child, lines)
		child = child.NextSibling
	}
}

func hasBlockChild(node *html.Node) bool {
	child := node.FirstChild
	for child != nil {
		if child.Type == html.ElementNode && blockTags[child.Data] {
			return true
		}
		child = child.NextSibling
	}
	return false
}

var commentMarkers = regexp.MustCompile(`<!--|-->`)

// StripComments removes HTML comment markers from raw markup. Stats sites
// ship some tables commented out for lazy rendering; dropping the markers
// makes those tables part of the parsed document.
func StripComments(markup []byte) []byte {
	return commentMarkers.ReplaceAll(markup, nil)
}
