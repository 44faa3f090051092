package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Results</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Results</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_SendsBrowserHeaders(t *testing.T) {
	var userAgent, acceptLanguage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		acceptLanguage = r.Header.Get("Accept-Language")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, userAgent, "Mozilla/5.0")
	assert.Equal(t, "en-US,en;q=0.5", acceptLanguage)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_WithMainElement(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Search Results</h1>
				<p>This is the important text.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Search Results")
	assert.Contains(t, text, "important text")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestExtractMainText_SearchResultSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Filter junk</div>
			<div id="resultsCol">
				<h2>Machine Learning Engineer</h2>
				<p>Build models with TensorFlow.</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, SearchResultSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Machine Learning Engineer")
	assert.Contains(t, text, "TensorFlow")
	assert.NotContains(t, text, "Filter junk")
}

func TestDefaultTextSelectors(t *testing.T) {
	selectors := DefaultTextSelectors()
	assert.Contains(t, selectors, "main")
	assert.Contains(t, selectors, "article")
}

func TestSearchResultSelectors(t *testing.T) {
	selectors := SearchResultSelectors()
	assert.Contains(t, selectors, "#mosaic-provider-jobcards")
	assert.Contains(t, selectors, "main")
}

func TestShouldUseBrowser_ShortText(t *testing.T) {
	assert.True(t, ShouldUseBrowser("just a stub page"))
	assert.True(t, ShouldUseBrowser(strings.Repeat(" ", 600)))
}

func TestShouldUseBrowser_RenderedText(t *testing.T) {
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}
