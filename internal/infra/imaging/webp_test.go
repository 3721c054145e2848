package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Same(t, src, Fit(src, MaxSide))
}

func TestFitScalesLongestSide(t *testing.T) {
	wide := Fit(image.NewRGBA(image.Rect(0, 0, 2048, 1024)), MaxSide)
	assert.Equal(t, 512, wide.Bounds().Dx())
	assert.Equal(t, 256, wide.Bounds().Dy())

	tall := Fit(image.NewRGBA(image.Rect(0, 0, 300, 1200)), MaxSide)
	assert.Equal(t, 128, tall.Bounds().Dx())
	assert.Equal(t, 512, tall.Bounds().Dy())
}
