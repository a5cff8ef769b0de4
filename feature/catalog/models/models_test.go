package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlant_ImageURLs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Empty", "", []string{}},
		{"Null", "null", []string{}},
		{"Malformed", "{not json", []string{}},
		{"List", `["/storage/plants/banana/images/a.jpg","/storage/plants/banana/images/b.jpg"]`,
			[]string{"/storage/plants/banana/images/a.jpg", "/storage/plants/banana/images/b.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Plant{ImageURLsRaw: tt.raw}
			assert.Equal(t, tt.want, p.ImageURLs())
		})
	}
}

func TestPlant_SetImageURLs(t *testing.T) {
	var p Plant

	p.SetImageURLs([]string{"/storage/plants/banana/images/a.jpg"})
	assert.Equal(t, `["/storage/plants/banana/images/a.jpg"]`, p.ImageURLsRaw)

	p.SetImageURLs(nil)
	assert.Equal(t, `[]`, p.ImageURLsRaw)

	// Round trip preserves order.
	urls := []string{"/b.jpg", "/a.jpg"}
	p.SetImageURLs(urls)
	assert.Equal(t, urls, p.ImageURLs())
}
