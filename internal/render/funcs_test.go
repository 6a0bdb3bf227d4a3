package render

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com/path", "https://example.com/path"},
		{"http://example.com/path?query=1", "http://example.com/path"},
		{"https://example.com/path#fragment", "https://example.com/path"},
		{"https://example.com/path?q=1#frag", "https://example.com/path"},
		{"https://sub.example.com:8080/api", "https://sub.example.com:8080/api"},
		{"https://example.com", "https://example.com"},
		{"https://example.com/", "https://example.com"},
		{"https://example.com/?query=test", "https://example.com"},
		{"https://example.com//double//slash//path", "https://example.com/double/slash/path"},
		{"http://localhost:3000/api", "http://localhost:3000/api"},
		{"http://127.0.0.1:8080/test", "http://127.0.0.1:8080/test"},
		{"https://example.com/path/with-dashes_and_underscores", "https://example.com/path/with-dashes_and_underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
