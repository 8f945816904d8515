package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/pkg/markdown"
)

func TestRender(t *testing.T) {
	r := markdown.New()

	tests := []struct {
		name     string
		src      string
		contains string
	}{
		{"heading", "# Fix bug", "<h1>Fix bug</h1>"},
		{"emphasis", "some **bold** text", "<strong>bold</strong>"},
		{"plain text", "details", "<p>details</p>"},
		{"raw html escaped", "<script>alert(1)</script>", "<!-- raw HTML omitted -->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.src)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}
