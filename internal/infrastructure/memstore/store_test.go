package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(0)
	s := p.Open("abc")

	v, err := s.Get(ctx, "userRole")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, "userRole", "customer"))
	v, err = s.Get(ctx, "userRole")
	require.NoError(t, err)
	assert.Equal(t, "customer", v)
	assert.Equal(t, 1, p.Len())

	require.NoError(t, s.Clear(ctx))
	v, _ = s.Get(ctx, "userRole")
	assert.Empty(t, v)
	assert.Equal(t, 0, p.Len())
}

func TestStore_SesionesAisladas(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(0)
	require.NoError(t, p.Open("a").Set(ctx, "userRole", "admin"))

	v, err := p.Open("b").Get(ctx, "userRole")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestStore_Vencimiento(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	p := NewProvider(time.Minute)
	p.now = func() time.Time { return now }

	s := p.Open("abc")
	require.NoError(t, s.Set(ctx, "userRole", "hr"))

	now = now.Add(59 * time.Second)
	v, _ := s.Get(ctx, "userRole")
	assert.Equal(t, "hr", v)

	now = now.Add(time.Second)
	v, _ = s.Get(ctx, "userRole")
	assert.Empty(t, v, "la sesión vencida se comporta como ausente")
	assert.Equal(t, 0, p.Len())
}

func TestStore_NuevaSesionBarreLasVencidas(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	p := NewProvider(time.Minute)
	p.now = func() time.Time { return now }

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, p.Open(id).Set(ctx, "userRole", "customer"))
	}
	require.Len(t, p.sessions, 3)

	now = now.Add(2 * time.Minute)
	require.NoError(t, p.Open("d").Set(ctx, "userRole", "admin"))

	assert.Len(t, p.sessions, 1, "las vencidas salen del mapa al crear otra sesión")
	assert.Contains(t, p.sessions, "d")
}

func TestProvider_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	p := NewProvider(time.Minute)
	p.now = func() time.Time { return now }

	require.NoError(t, p.Open("vieja").Set(ctx, "userRole", "hr"))
	now = now.Add(30 * time.Second)
	require.NoError(t, p.Open("nueva").Set(ctx, "userRole", "sales"))

	now = now.Add(40 * time.Second)
	assert.Equal(t, 1, p.Sweep())
	assert.Len(t, p.sessions, 1)
	assert.Contains(t, p.sessions, "nueva")

	p2 := NewProvider(0)
	require.NoError(t, p2.Open("x").Set(ctx, "userRole", "admin"))
	assert.Zero(t, p2.Sweep(), "sin TTL nada vence")
}
