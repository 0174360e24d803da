package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedinCard(title, href, company, location, datetime string) string {
	return fmt.Sprintf(`
<li>
  <div class="base-card base-search-card">
    <a class="base-card__full-link" href="%s">%s</a>
    <div class="base-search-card__info">
      <h3 class="base-search-card__title">
        %s
      </h3>
      <h4 class="base-search-card__subtitle">
        <a class="hidden-nested-link" href="#">%s</a>
      </h4>
      <div class="base-search-card__metadata">
        <span class="job-search-card__location">%s</span>
        <time class="job-search-card__listdate" datetime="%s">1 day ago</time>
      </div>
    </div>
  </div>
</li>`, href, title, title, company, location, datetime)
}

func linkedinPage(cards ...string) string {
	return `<ul class="jobs-search__results-list">` + strings.Join(cards, "\n") + `</ul>`
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLinkedIn_Search(t *testing.T) {
	page := linkedinPage(
		linkedinCard("Data Scientist", "https://www.linkedin.com/jobs/view/123?refId=abc&trackingId=xyz",
			"Acme Corp", "Bengaluru, Karnataka, India", "2026-08-24"),
		linkedinCard("ML  Engineer", "https://www.linkedin.com/jobs/view/456",
			"Globex", "Remote", "2026-08-23"),
	)
	server := serveHTML(t, page)

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Data Scientist", Location: "India"})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "linkedin", first.Site)
	assert.Equal(t, "Data Scientist", first.Title)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/123", first.JobURL, "tracking parameters should be stripped")
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Bengaluru, Karnataka, India", first.Location)
	assert.Equal(t, "2026-08-24", first.DatePosted)

	assert.Equal(t, "ML Engineer", listings[1].Title, "whitespace runs should collapse")
}

func TestLinkedIn_Search_AppliesLimit(t *testing.T) {
	page := linkedinPage(
		linkedinCard("Role A", "https://example.com/a", "A Co", "India", "2026-08-24"),
		linkedinCard("Role B", "https://example.com/b", "B Co", "India", "2026-08-24"),
		linkedinCard("Role C", "https://example.com/c", "C Co", "India", "2026-08-24"),
	)
	server := serveHTML(t, page)

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Role", Location: "India", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestLinkedIn_Search_SendsFilters(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(linkedinPage()))
	}))
	defer server.Close()

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	_, err := board.Search(context.Background(), Request{
		Role:     "Data Scientist",
		Location: "India",
		MaxAge:   72 * time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Data Scientist"}, query["keywords"])
	assert.Equal(t, []string{"India"}, query["location"])
	assert.Equal(t, []string{"r259200"}, query["f_TPR"], "72h should map to seconds")
}

func TestLinkedIn_Search_SkipsIncompleteCards(t *testing.T) {
	incomplete := `
<li>
  <div class="base-card">
    <h3 class="base-search-card__title">Promoted banner</h3>
  </div>
</li>`
	page := linkedinPage(
		incomplete,
		linkedinCard("Data Scientist", "https://example.com/a", "Acme", "India", "2026-08-24"),
	)
	server := serveHTML(t, page)

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Data Scientist", Location: "India"})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Data Scientist", listings[0].Title)
}

func TestLinkedIn_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	_, err := board.Search(context.Background(), Request{Role: "Data Scientist", Location: "India"})
	assert.Error(t, err)
}

func TestLinkedIn_Search_EmptyResults(t *testing.T) {
	server := serveHTML(t, linkedinPage())

	board := NewLinkedIn(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Underwater Basket Weaver", Location: "India"})
	require.NoError(t, err)
	assert.Empty(t, listings)
}
