package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeBytes(t *testing.T) {
	b := []byte("secret-password")
	WipeBytes(b)
	assert.Equal(t, make([]byte, len("secret-password")), b)
}

func TestWipeBytes_Nil(t *testing.T) {
	assert.NotPanics(t, func() { WipeBytes(nil) })
}
