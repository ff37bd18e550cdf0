package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, 0.8, v.Y, 1e-9)

	// Нулевой вектор нормализуется в нулевой, без деления на ноль
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 0.0, Vec2{}.Angle(), 1e-9, "Угол нулевого вектора равен 0 (atan2(0,0))")
	assert.InDelta(t, math.Pi/2, Vec2{X: 0, Y: 1}.Angle(), 1e-9)

	back := FromAngle(math.Pi / 4)
	assert.InDelta(t, math.Sqrt2/2, back.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, back.Y, 1e-9)
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, Vec2{X: 0, Y: 0}.DistanceTo(Vec2{X: 3, Y: 4}), 1e-9)
}

func TestClamp(t *testing.T) {
	v := Vec2{X: -100, Y: 100}.Clamp(-10, 10)
	assert.Equal(t, Vec2{X: -10, Y: 10}, v)
}
