package objectstore

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	p := ObjectPath(42, "Me.PNG")
	assert.Regexp(t, regexp.MustCompile(`^avatars/42/[0-9a-f-]{36}\.png$`), p)
	assert.NotEqual(t, p, ObjectPath(42, "Me.PNG"))

	assert.Regexp(t, `^avatars/7/[0-9a-f-]{36}$`, ObjectPath(7, "noext"))
}
