package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := &Opener{start: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}

	require.NoError(t, o.Open("https://github.com/silexlabs/Silex"))

	wantName, wantArgs := platformCommand("https://github.com/silexlabs/Silex")
	assert.Equal(t, wantName, gotName)
	assert.Equal(t, wantArgs, gotArgs)
	assert.Contains(t, gotArgs, "https://github.com/silexlabs/Silex")
}

func TestOpenRejectsOtherSchemes(t *testing.T) {
	called := false
	o := &Opener{start: func(string, ...string) error {
		called = true
		return nil
	}}

	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "", "://bad"} {
		assert.Error(t, o.Open(u), u)
	}
	assert.False(t, called)
}

func TestOpenWrapsStartError(t *testing.T) {
	boom := errors.New("not found")
	o := &Opener{start: func(string, ...string) error { return boom }}

	err := o.Open("http://www.silex.me/")
	assert.ErrorIs(t, err, boom)
}
