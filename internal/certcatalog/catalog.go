package certcatalog

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// HeadlessRenderer renders a catalog page in a real browser and returns the
// resulting HTML. Used only when the static page yields no courses, since
// the catalog increasingly hydrates its result cards client-side.
type HeadlessRenderer interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// CatalogClient fetches the catalog's search page with colly and extracts
// course entries through an ordered chain of selector strategies. The chain
// stops at the first strategy that yields any results.
type CatalogClient struct {
	baseURL  string
	headless HeadlessRenderer
	logger   *log.Logger
}

func NewCatalogClient(baseURL string, headless HeadlessRenderer, logger *log.Logger) *CatalogClient {
	if logger == nil {
		logger = log.Default()
	}
	return &CatalogClient{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		headless: headless,
		logger:   logger,
	}
}

func (c *CatalogClient) Search(ctx context.Context, skill string) ([]Course, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, nil
	}

	searchURL := fmt.Sprintf("%s/search?query=%s&sortBy=BEST_MATCH", c.baseURL, url.QueryEscape(skill))

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	body, err := c.fetch(ctx, searchURL, base)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	courses := parseCourses(doc, base)
	if len(courses) > 0 || c.headless == nil {
		return courses, nil
	}

	// Static page came back empty; render it for real and try again.
	html, err := c.headless.Render(ctx, searchURL)
	if err != nil {
		c.logger.Printf("catalog headless render failed skill=%q err=%v", skill, err)
		return nil, nil
	}
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return parseCourses(doc, base), nil
}

func (c *CatalogClient) fetch(ctx context.Context, pageURL string, base *url.URL) ([]byte, error) {
	host := base.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	var col *colly.Collector
	if host == "" {
		col = colly.NewCollector()
	} else {
		col = colly.NewCollector(colly.AllowedDomains(host, "www."+host))
	}
	col.SetRequestTimeout(10 * time.Second)
	_ = col.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36")
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.5")
	})

	var body []byte
	col.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := col.Visit(pageURL); err != nil {
		return nil, err
	}
	col.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return body, nil
}

// Selector strategies in priority order. The catalog's markup shifts under
// us regularly; the later entries are progressively cruder.
var courseSelectors = []string{
	"a.cds-CommonCard-titleLink",
	"a[class*='CommonCard-titleLink']",
	"a[href*='/learn/']",
}

func parseCourses(doc *goquery.Document, base *url.URL) []Course {
	for _, sel := range courseSelectors {
		courses := extractWithSelector(doc, sel, base)
		if len(courses) > 0 {
			return courses
		}
	}
	return nil
}

func extractWithSelector(doc *goquery.Document, sel string, base *url.URL) []Course {
	var out []Course
	doc.Find(sel).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}

		title := strings.TrimSpace(link.Find("h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(link.AttrOr("aria-label", ""))
		}
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			return
		}

		out = append(out, Course{Title: title, URL: absoluteURL(base, href)})
	})
	return out
}

func absoluteURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}
	return base.ResolveReference(ref).String()
}
