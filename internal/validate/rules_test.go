package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_Effective(t *testing.T) {
	t.Run("zero value resolves to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultRules(), Rules{}.Effective())
	})

	t.Run("overrides are kept", func(t *testing.T) {
		r := Rules{HandleMinLen: 4, DescriptionMaxLen: 280, Reserved: []string{}}.Effective()
		assert.Equal(t, 4, r.HandleMinLen)
		assert.Equal(t, DefaultHandleMaxLen, r.HandleMaxLen)
		assert.Equal(t, 280, r.DescriptionMaxLen)
		assert.Empty(t, r.Reserved)
		assert.Equal(t, DefaultEpoch(), r.Epoch)
	})

	t.Run("empty reserved list disables reserved words", func(t *testing.T) {
		r := Rules{Reserved: []string{}}
		assert.NoError(t, r.Handle("admin"))
	})
}

func TestDefaultReserved_ReturnsCopy(t *testing.T) {
	words := DefaultReserved()
	words[0] = "changed"
	assert.Equal(t, "admin", DefaultReserved()[0])
	assert.Equal(t, RuleReserved, RuleOf(Handle("admin")))
}
