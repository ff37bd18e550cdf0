package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMassRadiusRelation(t *testing.T) {
	// Соотношение radius = 4*sqrt(mass) и обратное
	assert.InDelta(t, 40.0, MassToRadius(100), 1e-9, "Радиус массы 100 должен быть 40")
	assert.InDelta(t, 100.0, RadiusToMass(40), 1e-9, "Масса радиуса 40 должна быть 100")
}

func TestMassRadiusInverse(t *testing.T) {
	// Взаимная обратность преобразований в пределах погрешности float
	for _, mass := range []float64{0.5, 1, 20, 86, 100, 1234.5} {
		assert.InDelta(t, mass, RadiusToMass(MassToRadius(mass)), 1e-9,
			"RadiusToMass(MassToRadius(m)) должна вернуть m для m=%v", mass)
	}
	for _, radius := range []float64{1, 4, 17.9, 40, 250} {
		assert.InDelta(t, radius, MassToRadius(RadiusToMass(radius)), 1e-9,
			"MassToRadius(RadiusToMass(r)) должна вернуть r для r=%v", radius)
	}
}
