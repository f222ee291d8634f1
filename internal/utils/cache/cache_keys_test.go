package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "session:id:abc", GenerateKey(EntitySession, KeyID, "abc"))
	assert.Equal(t, "prices:session:abc", GenerateKey(EntityPrices, KeySession, "abc"))
}
