// Package extract turns uploaded HTML documents into plain text for counting.
package extract

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the content-bearing tags kept as separate lines.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,td,th,pre,blockquote,figcaption"

// HTMLToText extracts readable text from an HTML document. The main article is
// located with go-readability; documents it rejects are flattened whole.
func HTMLToText(html, name string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: "/" + name}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		text, err := flatten(article.Content)
		if err == nil && text != "" {
			if title := normalizeText(article.Title); title != "" {
				text = title + "\n" + text
			}
			return text, nil
		}
	}

	text, err := flatten(html)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return text, nil
}

// flatten renders the block elements of an HTML fragment as one line each.
func flatten(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script,style,noscript,template").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		// Nested blocks (li > p) are emitted by the innermost element only.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return normalizeText(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
