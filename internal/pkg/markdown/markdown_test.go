package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{name: "emphasis", source: "**bold**", contains: "<strong>bold</strong>"},
		{name: "list", source: "- one\n- two", contains: "<li>two</li>"},
		{name: "table", source: "| a |\n|---|\n| b |", contains: "<table>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, string(ToHTML(tt.source)), tt.contains)
		})
	}
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	out := string(ToHTML("<script>alert(1)</script>"))

	assert.NotContains(t, out, "<script>")
}
