package pageaudit_test

import (
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_Rewrite(t *testing.T) {
	t.Parallel()

	mirror := pageaudit.NewMirror("https://www.avathi.com", "https://avathioutdoors.gumlet.io/scrapped-data/")

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "trailing slash is stripped",
			url:  "https://www.avathi.com/activities/rafting/",
			want: "https://avathioutdoors.gumlet.io/scrapped-data/activities/rafting/index.html",
		},
		{
			name: "no trailing slash",
			url:  "https://www.avathi.com/places/coorg",
			want: "https://avathioutdoors.gumlet.io/scrapped-data/places/coorg/index.html",
		},
		{
			name: "site root with slash",
			url:  "https://www.avathi.com/",
			want: "https://avathioutdoors.gumlet.io/scrapped-data/index.html",
		},
		{
			name: "site root without slash",
			url:  "https://www.avathi.com",
			want: "https://avathioutdoors.gumlet.io/scrapped-data/index.html",
		},
		{
			name: "only one trailing slash is stripped",
			url:  "https://www.avathi.com/experiences//",
			want: "https://avathioutdoors.gumlet.io/scrapped-data/experiences//index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := mirror.Rewrite(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMirror_Rewrite_OutsideOrigin(t *testing.T) {
	t.Parallel()

	mirror := pageaudit.NewMirror("https://www.avathi.com/", "https://mirror.example.com")

	for _, u := range []string{
		"https://example.com/activities/",
		"http://www.avathi.com/activities/",
		"https://www.avathi.com.evil.net/activities/",
		"",
	} {
		_, err := mirror.Rewrite(u)
		require.Error(t, err, u)
		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
	}
}
