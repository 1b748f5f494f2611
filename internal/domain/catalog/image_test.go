package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/shared"
)

func imageURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://static.example.com/p/%d.jpg", i+1)
	}
	return urls
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https url", "https://static.example.com/a.jpg", false},
		{"empty", "", true},
		{"not a url", "not a url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := NewImage(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, image.URL())
		})
	}
}

func TestImages_Add(t *testing.T) {
	images := NewImages()
	require.NoError(t, images.AddManyFromURLs(imageURLs(MaxImages)))
	assert.Equal(t, MaxImages, images.Len())

	extra, err := NewImage("https://static.example.com/extra.jpg")
	require.NoError(t, err)
	err = images.Add(extra)
	assert.ErrorIs(t, err, shared.ErrImagesCapacityExceeded)
	assert.Equal(t, MaxImages, images.Len())
}

func TestImages_AddManyFromURLs(t *testing.T) {
	t.Run("truncates beyond capacity", func(t *testing.T) {
		images := NewImages()
		require.NoError(t, images.AddManyFromURLs(imageURLs(3)))
		require.NoError(t, images.AddManyFromURLs(imageURLs(10)))

		assert.Equal(t, MaxImages, images.Len())
		assert.Equal(t, "https://static.example.com/p/5.jpg", images.URLs()[7])
	})

	t.Run("full collection ignores input", func(t *testing.T) {
		images := NewImages()
		require.NoError(t, images.AddManyFromURLs(imageURLs(MaxImages)))
		assert.NoError(t, images.AddManyFromURLs([]string{"garbage"}))
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		images := NewImages()
		err := images.AddManyFromURLs([]string{"https://ok.example.com/a.jpg", "::bad"})
		assert.ErrorIs(t, err, shared.ErrInvalidURL)
		assert.Equal(t, 0, images.Len())
	})
}

func TestImages_AllReturnsCopy(t *testing.T) {
	images := NewImages()
	require.NoError(t, images.AddManyFromURLs(imageURLs(2)))

	all := images.All()
	all[0] = nil

	assert.Equal(t, 2, images.Len())
	assert.Equal(t, imageURLs(2), images.URLs())
}
