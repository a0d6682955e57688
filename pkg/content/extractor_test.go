package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	articleHTML := `<!DOCTYPE html>
<html>
<head>
	<title>Test Article Title</title>
	<meta property="og:image" content="https://example.com/lead.jpg">
	<meta name="description" content="A short description of the article.">
</head>
<body>
	<article>
		<h1>Test Article Title</h1>
		<p>This is the first paragraph of the article body. It contains enough text
		to pass the minimum length check that guards against boilerplate pages.</p>
		<p>This is the second paragraph with more meaningful content so the
		extractor has something substantial to work with in this test.</p>
		<img src="/images/banner.png" alt="banner">
		<p>A closing paragraph wraps up the article with final thoughts and some
		additional words to keep the extraction confident.</p>
	</article>
</body>
</html>`

	t.Run("extracts text, title and images", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(articleHTML))
		}))
		defer server.Close()

		extractor := NewHTTPExtractor(10*time.Second, "feedclip/1.0", 50)
		res, err := extractor.Extract(context.Background(), server.URL+"/post")
		require.NoError(t, err)

		assert.Equal(t, "Test Article Title", res.Title)
		assert.Contains(t, res.ContentText, "first paragraph")
		assert.NotEmpty(t, res.Excerpt)
		assert.Equal(t, "https://example.com/lead.jpg", res.Image)
	})

	t.Run("too little content fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body><p>tiny</p></body></html>"))
		}))
		defer server.Close()

		extractor := NewHTTPExtractor(10*time.Second, "feedclip/1.0", 50)
		_, err := extractor.Extract(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		extractor := NewHTTPExtractor(10*time.Second, "feedclip/1.0", 50)
		_, err := extractor.Extract(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code")
	})

	t.Run("invalid url", func(t *testing.T) {
		extractor := NewHTTPExtractor(10*time.Second, "feedclip/1.0", 50)
		_, err := extractor.Extract(context.Background(), "not-a-url")
		require.Error(t, err)
	})
}

func TestHTTPExtractor_Sanitize(t *testing.T) {
	extractor := NewHTTPExtractor(time.Second, "feedclip/1.0", 50)
	dirty := `<p>ok</p><script>alert("x")</script><img src="https://example.com/a.png">`
	clean := extractor.Sanitize(dirty)
	assert.Contains(t, clean, "<p>ok</p>")
	assert.NotContains(t, clean, "script")
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("  short  ", 250))
	long := strings.Repeat("word ", 100)
	got := Snippet(long, 50)
	assert.LessOrEqual(t, len([]rune(got)), 50)
	assert.NotEmpty(t, got)
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name, base, ref, expected string
	}{
		{"already absolute", "https://a.example/post", "https://img.example/x.png", "https://img.example/x.png"},
		{"relative path", "https://a.example/post/1", "/img/x.png", "https://a.example/img/x.png"},
		{"relative to page", "https://a.example/post/1", "x.png", "https://a.example/post/x.png"},
		{"empty ref", "https://a.example/post", "", ""},
		{"bad base", "%%%", "/x.png", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AbsoluteURL(tt.base, tt.ref))
		})
	}
}
