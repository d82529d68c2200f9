package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentKind_String(t *testing.T) {
	assert.Equal(t, "Controller", KindController.String())
	assert.Equal(t, "Proxy", KindProxy.String())
	assert.Equal(t, "Client", KindClient.String())
	assert.Equal(t, "Unknown", ComponentKind(99).String())
}

func TestComponentKind_Valid(t *testing.T) {
	assert.True(t, KindController.Valid())
	assert.True(t, KindProxy.Valid())
	assert.True(t, KindClient.Valid())
	assert.False(t, ComponentKind(99).Valid())
}
