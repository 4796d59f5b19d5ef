package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "owner/quote.pdf", want: "owner/quote.pdf"},
		{name: "simple prefix", prefix: "portal", key: "owner/quote.pdf", want: "portal/owner/quote.pdf"},
		{name: "prefix trailing slash", prefix: "portal/", key: "owner/quote.pdf", want: "portal/owner/quote.pdf"},
		{name: "prefix and key slashes", prefix: "/portal/", key: "/owner/quote.pdf", want: "portal/owner/quote.pdf"},
		{name: "nested prefix", prefix: "portal/docs", key: "owner/quote.pdf", want: "portal/docs/owner/quote.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
