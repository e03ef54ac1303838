package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *cloudinaryAdapter {
	t.Helper()
	return &cloudinaryAdapter{cloudName: "demo"}
}

func TestOwns(t *testing.T) {
	a := newTestAdapter(t)

	assert.True(t, a.Owns("https://res.cloudinary.com/demo/image/upload/v123/portfolio/resumes/abc.pdf"))
	assert.False(t, a.Owns("https://res.cloudinary.com/othercloud/image/upload/v123/abc.pdf"))
	assert.False(t, a.Owns("https://cdn.example.com/demo/image/upload/abc.pdf"))
	assert.False(t, a.Owns("://not-a-url"))
}

func TestPublicID(t *testing.T) {
	a := newTestAdapter(t)

	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			name: "versioned delivery url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345/portfolio/resumes/abc.pdf",
			want: "portfolio/resumes/abc",
			ok:   true,
		},
		{
			name: "unversioned url",
			url:  "https://res.cloudinary.com/demo/raw/upload/portfolio/project-images/shot.png",
			want: "portfolio/project-images/shot",
			ok:   true,
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v9/portfolio/profile-pictures/me",
			want: "portfolio/profile-pictures/me",
			ok:   true,
		},
		{
			name: "folder containing a dot keeps the segment intact",
			url:  "https://res.cloudinary.com/demo/image/upload/v9/port.folio/me",
			want: "port.folio/me",
			ok:   true,
		},
		{
			name: "foreign host",
			url:  "https://cdn.example.com/demo/image/upload/v9/x.png",
			ok:   false,
		},
		{
			name: "missing upload segment",
			url:  "https://res.cloudinary.com/demo/image/x.png",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.PublicID(tt.url)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1712345"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("version"))
	assert.False(t, isVersionSegment("portfolio"))
}
