package mathutil

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEulerXYZToQuat(t *testing.T) {
	t.Run("Zero is identity", func(t *testing.T) {
		q := EulerXYZToQuat(Vec3{})
		assert.InDeltaSlice(t, QuatIdentity[:], q[:], 1e-12)
	})

	t.Run("Quarter turn around X", func(t *testing.T) {
		q := EulerXYZToQuat(Vec3{math.Pi / 2, 0, 0})
		h := math.Sqrt2 / 2
		assert.InDeltaSlice(t, []float64{h, 0, 0, h}, q[:], 1e-12)
	})

	t.Run("Quarter turn around Z", func(t *testing.T) {
		q := EulerXYZToQuat(Vec3{0, 0, math.Pi / 2})
		h := math.Sqrt2 / 2
		assert.InDeltaSlice(t, []float64{0, 0, h, h}, q[:], 1e-12)
	})

	t.Run("Always unit length", func(t *testing.T) {
		q := EulerXYZToQuat(Vec3{Deg2Rad(35), Deg2Rad(-20), Deg2Rad(170)})
		assert.InDelta(t, 1.0, q.Len(), 1e-12)
	})
}

func TestVec3(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	assert.False(t, Vec3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math.Inf(1), 0}.IsFinite())
	assert.InDelta(t, math.Pi, Deg2Rad(180), 1e-12)
}

func TestVec3Decoding(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var v Vec3
		require.NoError(t, json.Unmarshal([]byte(`[1, 2.5, -3]`), &v))
		assert.Equal(t, Vec3{1, 2.5, -3}, v)

		var p *Vec3
		require.NoError(t, json.Unmarshal([]byte(`null`), &p))
		assert.Nil(t, p)
	})

	t.Run("JSON Wrong Length", func(t *testing.T) {
		for _, raw := range []string{`[]`, `[1]`, `[1, 2]`, `[1, 2, 3, 4]`} {
			var v Vec3
			assert.Error(t, json.Unmarshal([]byte(raw), &v), raw)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		var v Vec3
		require.NoError(t, yaml.Unmarshal([]byte("[0.1, 0, 2]"), &v))
		assert.Equal(t, Vec3{0.1, 0, 2}, v)
	})

	t.Run("YAML Wrong Length", func(t *testing.T) {
		var v Vec3
		assert.Error(t, yaml.Unmarshal([]byte("[1, 2]"), &v))
		assert.Error(t, yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &v))
	})
}
