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

func indeedCard(title, href, company, location, date string) string {
	return fmt.Sprintf(`
<div class="job_seen_beacon">
  <h2 class="jobTitle">
    <a class="jcs-JobTitle" data-jk="abc123" href="%s"><span title="%s">%s</span></a>
  </h2>
  <span data-testid="company-name">%s</span>
  <div data-testid="text-location">%s</div>
  <span class="date">%s</span>
</div>`, href, title, title, company, location, date)
}

func TestIndeed_Search(t *testing.T) {
	page := indeedCard("Python Developer", "/rc/clk?jk=abc123&from=serp", "Initech", "Pune, Maharashtra", "Posted 2 days ago")
	server := serveHTML(t, page)

	board := NewIndeed(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Python Developer", Location: "Pune"})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	got := listings[0]
	assert.Equal(t, "indeed", got.Site)
	assert.Equal(t, "Python Developer", got.Title)
	assert.Equal(t, server.URL+"/rc/clk", got.JobURL, "relative href should absolutize and drop tracking")
	assert.Equal(t, "Initech", got.Company)
	assert.Equal(t, "Pune, Maharashtra", got.Location)
	assert.Equal(t, "Posted 2 days ago", got.DatePosted)
}

func TestIndeed_Search_JobKeyFallback(t *testing.T) {
	page := `
<div class="job_seen_beacon">
  <h2 class="jobTitle"><span title="Data Engineer">Data Engineer</span></h2>
  <a data-jk="def456" href="#"></a>
  <span data-testid="company-name">Hooli</span>
</div>`
	server := serveHTML(t, page)

	board := NewIndeed(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Data Engineer", Location: "India"})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, server.URL+"/viewjob?jk=def456", listings[0].JobURL)
}

func TestIndeed_Search_AppliesLimit(t *testing.T) {
	page := strings.Join([]string{
		indeedCard("Role A", "/a", "A Co", "India", "Today"),
		indeedCard("Role B", "/b", "B Co", "India", "Today"),
		indeedCard("Role C", "/c", "C Co", "India", "Today"),
	}, "\n")
	server := serveHTML(t, page)

	board := NewIndeed(nil)
	board.baseURL = server.URL

	listings, err := board.Search(context.Background(), Request{Role: "Role", Location: "India", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestIndeed_Search_SendsFilters(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	board := NewIndeed(nil)
	board.baseURL = server.URL

	_, err := board.Search(context.Background(), Request{
		Role:     "Python Developer",
		Location: "Pune",
		MaxAge:   72 * time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Python Developer"}, query["q"])
	assert.Equal(t, []string{"Pune"}, query["l"])
	assert.Equal(t, []string{"3"}, query["fromage"], "72h should map to whole days")
}

func TestCountryPrefix(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"india", "in"},
		{"India", "in"},
		{" United Kingdom ", "uk"},
		{"USA", "www"},
		{"Atlantis", "www"},
		{"", "www"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, countryPrefix(tt.country))
		})
	}
}

func TestWholeDays(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want int
	}{
		{72 * time.Hour, 3},
		{24 * time.Hour, 1},
		{25 * time.Hour, 2},
		{30 * time.Minute, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wholeDays(tt.age), "age %s", tt.age)
	}
}
