package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrip(t *testing.T) {
	for _, k := range All() {
		got, ok := Parse(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, id := range []string{"", "unknown", "file", "file.save ", "FILE.SAVE"} {
		k, ok := Parse(id)
		assert.False(t, ok, id)
		assert.Equal(t, Unknown, k)
		assert.False(t, Known(id))
	}
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Kind(-3).String())
}

func TestIsHelp(t *testing.T) {
	assert.True(t, HelpAbout.IsHelp())
	assert.True(t, HelpContributors.IsHelp())
	assert.False(t, EditRenamePage.IsHelp())
	assert.False(t, FileNew.IsHelp())

	var help int
	for _, k := range All() {
		if k.IsHelp() {
			help++
			assert.NotEmpty(t, DefaultHelpLinks[k], k.String())
		}
	}
	assert.Equal(t, 12, help)
}

func TestHelpLinksOverrides(t *testing.T) {
	links, ignored := HelpLinks(map[string]string{
		"help.about": "https://example.org/about",
		"file.save":  "https://example.org/nope",
		"bogus":      "https://example.org/bogus",
	})

	assert.Equal(t, "https://example.org/about", links[HelpAbout])
	assert.Equal(t, DefaultHelpLinks[HelpIssues], links[HelpIssues])
	assert.ElementsMatch(t, []string{"file.save", "bogus"}, ignored)
	assert.Equal(t, "http://www.silex.me/", DefaultHelpLinks[HelpAbout], "defaults must not be mutated")
}
