package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/surya/job-search-agent/internal/fetch"
	"github.com/surya/job-search-agent/internal/types"
)

// countryPrefixes maps a country context to its Indeed subdomain. Unknown
// countries fall through to the global site.
var countryPrefixes = map[string]string{
	"india":          "in",
	"usa":            "www",
	"united states":  "www",
	"uk":             "uk",
	"united kingdom": "uk",
	"canada":         "ca",
	"australia":      "au",
	"germany":        "de",
	"singapore":      "sg",
}

// Indeed scrapes the Indeed job search for the configured country site.
type Indeed struct {
	// baseURL overrides the country-derived host when non-empty.
	baseURL string
	opts    *fetch.Options
}

// NewIndeed builds the Indeed board. A nil opts uses fetch defaults; set
// opts.UseBrowser when the country site serves JavaScript-gated markup.
func NewIndeed(opts *fetch.Options) *Indeed {
	return &Indeed{opts: opts}
}

// Name identifies the board in listings and logs.
func (b *Indeed) Name() string { return "indeed" }

// Search fetches one results page for the request. The recency window maps
// to the fromage whole-days filter; the cap is applied while parsing.
func (b *Indeed) Search(ctx context.Context, req Request) ([]types.Listing, error) {
	base := b.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.indeed.com", countryPrefix(req.Country))
	}

	params := url.Values{}
	params.Set("q", req.Role)
	params.Set("l", req.Location)
	if req.MaxAge > 0 {
		params.Set("fromage", strconv.Itoa(wholeDays(req.MaxAge)))
	}

	html, err := fetch.Page(ctx, base+"/jobs?"+params.Encode(), b.opts)
	if err != nil {
		return nil, fmt.Errorf("indeed search: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("indeed parse: %w", err)
	}

	var listings []types.Listing
	doc.Find("div.job_seen_beacon").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if req.Limit > 0 && len(listings) >= req.Limit {
			return false
		}

		titleNode := card.Find("h2.jobTitle span").First()
		title, ok := titleNode.Attr("title")
		if !ok || title == "" {
			title = titleNode.Text()
		}
		title = cleanText(title)

		link := b.listingURL(base, card)
		if title == "" || link == "" {
			return true
		}

		company := cleanText(card.Find(`[data-testid="company-name"]`).First().Text())
		location := cleanText(card.Find(`[data-testid="text-location"]`).First().Text())
		date := cleanText(card.Find(`[data-testid="myJobsStateDate"]`).First().Text())
		if date == "" {
			date = cleanText(card.Find("span.date").First().Text())
		}

		listings = append(listings, types.Listing{
			Site:       b.Name(),
			Title:      title,
			Company:    company,
			Location:   location,
			DatePosted: date,
			JobURL:     link,
		})
		return true
	})

	return listings, nil
}

// listingURL resolves a card's posting URL, preferring the title anchor href
// and falling back to the data-jk job key.
func (b *Indeed) listingURL(base string, card *goquery.Selection) string {
	if href, ok := card.Find("a.jcs-JobTitle").First().Attr("href"); ok && href != "" {
		if strings.HasPrefix(href, "/") {
			return base + stripTracking(href)
		}
		return stripTracking(href)
	}

	if jk, ok := card.Find("a[data-jk]").First().Attr("data-jk"); ok && jk != "" {
		return base + "/viewjob?jk=" + jk
	}

	return ""
}

func countryPrefix(country string) string {
	if prefix, ok := countryPrefixes[strings.ToLower(strings.TrimSpace(country))]; ok {
		return prefix
	}
	return "www"
}

// wholeDays rounds a recency window up to whole days, minimum one.
func wholeDays(age time.Duration) int {
	days := int((age + 24*time.Hour - 1) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}
