package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/ppiankov/sotd/internal/model"
)

// ParseThreadHTML extracts comments from a saved old.reddit.com thread page.
// Pages without comment markup fall back to one comment per rendered body.
func ParseThreadHTML(r io.Reader, threadID string) ([]model.Comment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var comments []model.Comment
	for _, node := range findAll(doc, isCommentThing) {
		md := findFirst(node, isMarkdownBody)
		if md == nil {
			continue
		}
		body, err := markdownText(md)
		if err != nil {
			return nil, err
		}
		comments = append(comments, model.Comment{
			ID:       strings.TrimPrefix(getAttribute(node, "data-fullname"), "t1_"),
			ThreadID: threadID,
			Author:   getAttribute(node, "data-author"),
			Body:     body,
		})
	}
	if len(comments) > 0 {
		return comments, nil
	}

	for i, md := range findAll(doc, isMarkdownBody) {
		body, err := markdownText(md)
		if err != nil {
			return nil, err
		}
		comments = append(comments, model.Comment{
			ID:       fmt.Sprintf("%s-%d", threadID, i+1),
			ThreadID: threadID,
			Body:     body,
		})
	}
	return comments, nil
}

func isCommentThing(n *html.Node) bool {
	return hasClass(n, "thing") && hasClass(n, "comment")
}

func isMarkdownBody(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "md")
}

// markdownText converts a rendered comment body back into markdown so
// the field templates see bold and list markers as they were typed.
// Blank lines are dropped; templates work line by line.
func markdownText(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render comment: %w", err)
		}
	}

	md, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("convert comment to markdown: %w", err)
	}

	var kept []string
	for _, line := range strings.Split(md, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}

// hasClass checks if a node has a specific CSS class
func hasClass(n *html.Node, className string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, class := range strings.Fields(getAttribute(n, "class")) {
		if class == className {
			return true
		}
	}
	return false
}

// getAttribute gets an attribute value from a node
func getAttribute(n *html.Node, attrKey string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrKey {
			return attr.Val
		}
	}
	return ""
}

// findAll finds all nodes matching a predicate
func findAll(n *html.Node, predicate func(*html.Node) bool) []*html.Node {
	var results []*html.Node

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if predicate(node) {
			results = append(results, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return results
}

// findFirst finds the first node matching a predicate, depth first
func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	if predicate(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, predicate); found != nil {
			return found
		}
	}
	return nil
}
