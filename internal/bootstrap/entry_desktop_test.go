//go:build !android && !ios && !mobile

package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompiledForDesktop(t *testing.T) {
	assert.Equal(t, DesktopTarget, CompiledTarget)
	assert.Equal(t, "desktop", CompiledTarget.String())
}
