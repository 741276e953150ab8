package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha256(t *testing.T) {
	assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", Sha256([]byte("abc")).String())
	assert.Equal(t, Sha256([]byte("abc")), Sha256([]byte("a"), []byte("bc")))
}
