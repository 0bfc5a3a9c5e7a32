package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// SourceJustDial identifies candidates produced by the directory adapter.
const SourceJustDial = "justdial"

const justDialUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// JustDialAdapter scrapes the public directory listing page for a city and
// category. Listings are identified by the store-details class; name and
// phone are both required for a candidate to be emitted.
type JustDialAdapter struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewJustDialAdapter builds the adapter around the directory base URL.
func NewJustDialAdapter(baseURL string, logger zerolog.Logger) *JustDialAdapter {
	return &JustDialAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		logger:  logger.With().Str("adapter", SourceJustDial).Logger(),
	}
}

// Name implements Adapter.
func (a *JustDialAdapter) Name() string { return SourceJustDial }

// Fetch implements Adapter. Any failure returns an empty slice.
func (a *JustDialAdapter) Fetch(ctx context.Context, city, businessType string, limit int) []Candidate {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil
	}

	target := fmt.Sprintf("%s/%s/%s", a.baseURL, slugify(city), slugify(businessType))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		a.logger.Warn().Err(err).Msg("create request failed")
		return nil
	}
	req.Header.Set("User-Agent", justDialUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn().Err(err).Str("url", target).Msg("directory fetch failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn().Int("status", resp.StatusCode).Str("url", target).Msg("directory returned error")
		return nil
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		a.logger.Warn().Err(err).Msg("parse listing page failed")
		return nil
	}

	var candidates []Candidate
	for _, node := range findByClass(doc, "store-details") {
		if len(candidates) >= limit {
			break
		}

		name := strings.TrimSpace(textByClass(node, "store-name"))
		phone := stripNonDigits(textByClass(node, "tel"))
		if name == "" || phone == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			Name:       name,
			Phone:      phone,
			Address:    strings.TrimSpace(textByClass(node, "address")),
			City:       city,
			Type:       businessType,
			HasWebsite: len(findByClass(node, "website")) > 0,
			Source:     SourceJustDial,
		})
	}

	return candidates
}

// findByClass collects every element under root carrying the given class.
func findByClass(root *html.Node, class string) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			matches = append(matches, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return matches
}

// textByClass returns the concatenated text of the first element under root
// with the given class.
func textByClass(root *html.Node, class string) string {
	nodes := findByClass(root, class)
	if len(nodes) == 0 {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(nodes[0])
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, candidate := range strings.Fields(attr.Val) {
			if candidate == class {
				return true
			}
		}
	}
	return false
}
