package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mackee/go-readability"
	"github.com/morikuni/failure/v2"
	"github.com/motemen/go-loghttp"
	"golang.org/x/net/html"
)

// isHTML reports whether the value contains HTML element markup.
// Plain text parses as HTML too, so we look for actual element tokens.
func isHTML(value string) bool {
	if !strings.ContainsRune(value, '<') {
		return false
	}
	tokenizer := html.NewTokenizer(strings.NewReader(value))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			return true
		}
	}
}

// DescriptionMarkdown converts a record's description to markdown.
// Rich-text descriptions arrive as HTML fragments; plain text passes through.
func DescriptionMarkdown(description string) (string, error) {
	if !isHTML(description) {
		return description, nil
	}

	converter := html2md.NewConverter("", true, nil)
	md, err := converter.ConvertString(description)
	if err != nil {
		// Fall back to the raw value rather than hiding the description
		return description, nil
	}
	return md, nil
}

// FetchWebsite fetches the page at rawURL and returns its readable content as
// markdown, extracted the same way a reader view would.
func FetchWebsite(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", failure.Wrap(err)
	}

	client := &http.Client{Transport: loghttp.DefaultTransport}
	resp, err := client.Do(req)
	if err != nil {
		return "", failure.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", failure.New(ErrWebsiteFetch,
			failure.Message("Failed to fetch website"),
			failure.Context{
				"url":         rawURL,
				"status_code": resp.Status,
			},
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure.Wrap(err)
	}

	article, err := readability.Extract(string(body), readability.DefaultOptions())
	if err != nil {
		return "", failure.Wrap(err)
	}
	if article.Root == nil {
		return "", failure.New(ErrWebsiteFetch,
			failure.Message("No readable content found"),
			failure.Context{"url": rawURL},
		)
	}

	return readability.ToMarkdown(article.Root), nil
}
