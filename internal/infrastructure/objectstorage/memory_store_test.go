package objectstorage_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boletas-api/internal/domain"
	"github.com/jhoicas/Boletas-api/internal/infrastructure/objectstorage"
)

func newMemoryStore(t *testing.T) *objectstorage.MemoryStore {
	t.Helper()
	s := objectstorage.NewMemoryStore(objectstorage.MemoryConfig{
		Bucket:        "boletas-local",
		BaseURL:       "http://localhost:8080/",
		SigningSecret: "secret-de-pruebas",
		Issuer:        "boletas-api",
	})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStore_PutExistsGet(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "boletas/G1/a-1.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "boletas/G1/a-1.pdf", []byte("%PDF-1.3"), "application/pdf"))

	ok, err = s.Exists(ctx, "boletas/G1/a-1.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	body, ct, err := s.Get(ctx, "boletas/G1/a-1.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), body)
	assert.Equal(t, "application/pdf", ct)
}

func TestMemoryStore_SignedURLResuelveKey(t *testing.T) {
	s := newMemoryStore(t)

	raw, err := s.SignedGetURL(context.Background(), "boletas/G1/a-1.pdf", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "http://localhost:8080"+objectstorage.DownloadPath+"?token="))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	key, err := s.ResolveToken(u.Query().Get("token"))
	require.NoError(t, err)
	assert.Equal(t, "boletas/G1/a-1.pdf", key)
}

func TestMemoryStore_TokenDeOtroBucket(t *testing.T) {
	other := objectstorage.NewMemoryStore(objectstorage.MemoryConfig{Bucket: "otro", SigningSecret: "secret-de-pruebas"})
	defer other.Close()

	raw, err := other.SignedGetURL(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	u, _ := url.Parse(raw)

	_, err = newMemoryStore(t).ResolveToken(u.Query().Get("token"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMemoryStore_TokenAlteradoEsForbidden(t *testing.T) {
	_, err := newMemoryStore(t).ResolveToken("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMemoryStore_SoloExistenLasKeysGuardadas(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()
	key := "boletas/G1/a-1.pdf"
	require.NoError(t, s.Put(ctx, key, []byte("%PDF-1.3"), "application/pdf"))

	for _, other := range []string{key + "#content-type", key + "#", "boletas/G1/a-1"} {
		ok, err := s.Exists(ctx, other)
		require.NoError(t, err)
		assert.False(t, ok, other)

		body, _, err := s.Get(ctx, other)
		require.NoError(t, err)
		assert.Nil(t, body, other)
	}
}

func TestMemoryStore_BodyVacioYBinario(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "vacio", nil, "application/pdf"))
	body, ct, err := s.Get(ctx, "vacio")
	require.NoError(t, err)
	assert.NotNil(t, body)
	assert.Empty(t, body)
	assert.Equal(t, "application/pdf", ct)

	bin := []byte{0x25, 0x00, 0xff, 0x00}
	require.NoError(t, s.Put(ctx, "bin", bin, "application/octet-stream"))
	body, ct, err = s.Get(ctx, "bin")
	require.NoError(t, err)
	assert.Equal(t, bin, body)
	assert.Equal(t, "application/octet-stream", ct)
}

func TestMemoryStore_SinSecretNoFirma(t *testing.T) {
	s := objectstorage.NewMemoryStore(objectstorage.MemoryConfig{Bucket: "b"})
	defer s.Close()

	_, err := s.SignedGetURL(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}
