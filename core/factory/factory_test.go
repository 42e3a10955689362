package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct{ addr string }

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[*sink]()
	require.NoError(t, reg.Register("prom", func(conf map[string]any) (*sink, error) {
		var c struct {
			Addr string `json:"addr"`
		}
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sink{addr: c.Addr}, nil
	}))
	s, err := reg.Create(ModuleConfig{Type: "prom", Conf: map[string]any{"addr": ":9100"}})
	require.NoError(t, err)
	assert.Equal(t, ":9100", s.addr)
	assert.Equal(t, []string{"prom"}, reg.Types())
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("y", nil))
	_, err := reg.Create(ModuleConfig{Type: "missing"})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeWeaklyTyped(t *testing.T) {
	var c struct {
		Buckets int  `json:"buckets"`
		Enabled bool `json:"enabled"`
	}
	require.NoError(t, Decode(map[string]any{"buckets": "12", "enabled": "true"}, &c))
	assert.Equal(t, 12, c.Buckets)
	assert.True(t, c.Enabled)
}
