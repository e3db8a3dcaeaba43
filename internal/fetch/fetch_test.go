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
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Backend Engineer</h1></body></html>"))
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.HTML, "<h1>Backend Engineer</h1>")
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Equal(t, "text/html", page.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, raw := range []string{"not-a-url", "ftp://example.com/job", "https://"} {
		_, err := URL(context.Background(), raw, nil)
		require.Error(t, err, raw)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, &Options{MaxBytes: 10})
	require.NoError(t, err)
	assert.Len(t, page.HTML, 10)
}

func TestMainText_PrefersPostingContainer(t *testing.T) {
	html := `
	<html>
		<head><title>Backend Engineer at Acme</title></head>
		<body>
			<nav>Jobs | About</nav>
			<div class="sidebar">Similar jobs</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<ul><li>5 years experience in Go</li><li>PostgreSQL</li></ul>
			</div>
			<footer>Copyright</footer>
		</body>
	</html>`

	text, err := MainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience in Go\nPostgreSQL")
	assert.NotContains(t, text, "Jobs | About")
	assert.NotContains(t, text, "Similar jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestMainText_FallbackToBody(t *testing.T) {
	text, err := MainText(`<html><body><span>Only   content</span></body></html>`, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "Only content", text)
}

func TestMainText_RemovesNoise(t *testing.T) {
	html := `<html><body><main><p>Build APIs.</p><form>Apply now</form></main></body></html>`

	text, err := MainText(html, []string{"main"}, NoiseSelectors(BoardUnknown)...)
	require.NoError(t, err)
	assert.Equal(t, "Build APIs.", text)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Data Scientist", Title(`<html><head><title> Data Scientist </title></head></html>`))
	assert.Equal(t, "", Title(`<html><body>no title</body></html>`))
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("Loading..."))
	assert.False(t, NeedsBrowser(strings.Repeat("x", MinTextLength)))
}
