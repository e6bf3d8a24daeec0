package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscaping(t *testing.T) {
	tests := []struct {
		in   string
		text string
		attr string
	}{
		{"", "", ""},
		{"plain 世界", "plain 世界", "plain 世界"},
		{`Tom & "Jerry"`, "Tom &amp; &quot;Jerry&quot;", "Tom &amp; &quot;Jerry&quot;"},
		{"<b>it's</b>", "&lt;b&gt;it&#39;s&lt;/b&gt;", "&lt;b&gt;it&#39;s&lt;/b&gt;"},
		{"a\n\r\tb", "a\n\r\tb", "a&#10;&#13;&#9;b"},
		{"&amp;", "&amp;amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.text, Text(tt.in))
			assert.Equal(t, tt.attr, EscapeAttr(tt.in))
		})
	}
}
