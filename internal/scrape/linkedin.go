package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/surya/job-search-agent/internal/fetch"
	"github.com/surya/job-search-agent/internal/types"
)

// linkedinGuestURL is the unauthenticated search endpoint. It returns plain
// HTML job cards without requiring a session.
const linkedinGuestURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeJobPostings/search"

// LinkedIn scrapes the LinkedIn guest job search.
type LinkedIn struct {
	baseURL string
	opts    *fetch.Options
}

// NewLinkedIn builds the LinkedIn board. A nil opts uses fetch defaults.
func NewLinkedIn(opts *fetch.Options) *LinkedIn {
	return &LinkedIn{
		baseURL: linkedinGuestURL,
		opts:    opts,
	}
}

// Name identifies the board in listings and logs.
func (b *LinkedIn) Name() string { return "linkedin" }

// Search fetches one page of guest results for the request. The recency
// window maps to the f_TPR seconds filter; the cap is applied while parsing.
func (b *LinkedIn) Search(ctx context.Context, req Request) ([]types.Listing, error) {
	params := url.Values{}
	params.Set("keywords", req.Role)
	params.Set("location", req.Location)
	if req.MaxAge > 0 {
		params.Set("f_TPR", fmt.Sprintf("r%d", int(req.MaxAge.Seconds())))
	}

	html, err := fetch.Page(ctx, b.baseURL+"?"+params.Encode(), b.opts)
	if err != nil {
		return nil, fmt.Errorf("linkedin search: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("linkedin parse: %w", err)
	}

	var listings []types.Listing
	doc.Find("div.base-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if req.Limit > 0 && len(listings) >= req.Limit {
			return false
		}

		title := cleanText(card.Find("h3.base-search-card__title").First().Text())
		link, _ := card.Find("a.base-card__full-link").First().Attr("href")
		link = stripTracking(strings.TrimSpace(link))
		if title == "" || link == "" {
			return true // not a job card
		}

		company := cleanText(card.Find("h4.base-search-card__subtitle a").First().Text())
		if company == "" {
			company = cleanText(card.Find("h4.base-search-card__subtitle").First().Text())
		}
		location := cleanText(card.Find("span.job-search-card__location").First().Text())
		date, _ := card.Find("time").First().Attr("datetime")

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
