package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "Banana", "banana"},
		{"Binomial", "Zea mays", "zea_mays"},
		{"CollapsesSeparators", "Zea  mays!!", "zea_mays"},
		{"TrimsUnderscores", "_Zea_", "zea"},
		{"MixedPunctuation", "Aloe-vera (true)", "aloe_vera_true"},
		{"Numeric", "Musa x paradisiaca 2", "musa_x_paradisiaca_2"},
		{"Empty", "", ""},
		{"OnlySeparators", "--!!--", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestFolderFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"ImageURL", "/storage/plants/banana/images/banana540.jpg", "banana"},
		{"AudioURL", "/storage/plants/zea_mays/audio/zea_mays_en_1750930216.mp3", "zea_mays"},
		{"FlatURL", "/storage/plants/banana/banana540.jpg", "banana"},
		{"NoPlantsSegment", "/storage/other/banana/x.jpg", ""},
		{"PlantsLastSegment", "/storage/plants", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FolderFromURL(tt.url))
		})
	}
}
