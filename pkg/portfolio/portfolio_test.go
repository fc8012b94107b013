package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixtureSizes(t *testing.T) {
	assert.Len(t, AboutParagraphs, 7)
	assert.Len(t, CertificationImages, 5)
	assert.Len(t, Educations, 3)
	assert.Len(t, Skills, 59)
	assert.Len(t, Experiences, 6)
	assert.Len(t, InterestTitles, 3)
	assert.Len(t, InterestImages, len(InterestTitles))
	assert.Len(t, ContactLinks, len(ContactIcons))
	assert.Len(t, NavLinks, 4)
}

func TestSkillsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Skills {
		assert.False(t, seen[s], "duplicate skill %q", s)
		assert.Equal(t, strings.TrimSpace(s), s)
		seen[s] = true
	}
}

func TestImagesAreRooted(t *testing.T) {
	var all []Image
	all = append(all, ProfileImage)
	all = append(all, ContactIcons...)
	all = append(all, CertificationImages...)
	all = append(all, InterestImages...)
	for _, img := range all {
		assert.True(t, strings.HasPrefix(img.Src, "/images/"), img.Src)
		assert.NotEmpty(t, img.Alt, img.Src)
	}
}
