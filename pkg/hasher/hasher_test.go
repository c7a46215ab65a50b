package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/equipe-pro/pkg/hasher"
)

func TestHashVerificar_RoundTrip(t *testing.T) {
	digest, err := hasher.Hash("senha-secreta-123", 4)
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "senha-secreta-123")

	assert.True(t, hasher.Verificar("senha-secreta-123", digest))
	assert.False(t, hasher.Verificar("senha-errada", digest))
}

func TestHash_CustoForaDaFaixaUsaPadrao(t *testing.T) {
	digest, err := hasher.Hash("qualquer", 99)
	require.NoError(t, err)
	assert.True(t, hasher.Verificar("qualquer", digest))
}

func TestVerificar_DigestMalformado(t *testing.T) {
	assert.False(t, hasher.Verificar("senha", "isto-nao-e-um-digest-bcrypt"))
	assert.False(t, hasher.Verificar("senha", ""))
}

func TestHash_SaltsDiferentes(t *testing.T) {
	d1, err := hasher.Hash("mesma-senha", 4)
	require.NoError(t, err)
	d2, err := hasher.Hash("mesma-senha", 4)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}
