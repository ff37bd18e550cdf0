package game

import "time"

// Игровые константы фиксируются при старте и не меняются во время работы.
const (
	// MapSize полный размер карты; границы мира ±MapSize/2 по обеим осям
	MapSize = 5000.0

	// Пеллеты
	PelletCount = 600 // инвариант популяции: съеденная пеллета сразу заменяется
	PelletValue = 1.0

	// Клетки
	StartMass    = 20.0
	MaxCells     = 8
	MinSplitMass = 40.0
	BaseSpeed    = 10.0 // желаемая скорость = BaseSpeed * mass^-0.15

	// Слияние и разделение
	MergeTime     = 15000.0 // мс до права на слияние после split
	SplitVelocity = 25.0

	// Выброс массы
	EjectMass     = 15.0
	EjectVelocity = 30.0
	EjectImmunity = 500 * time.Millisecond // окно самопоглощения владельцем

	// Распад массы крупных клеток
	MassDecayThreshold = 200.0
	MassDecayRate      = 0.002 // доля массы в секунду

	// Хищничество
	EatRatio   = 1.15 // масса атакующего должна строго превышать mass*EatRatio
	EatOverlap = 0.75 // коэффициент поглощения поверхности жертвы

	// Затухание остаточной скорости. Применяется за тик, без нормализации
	// по dt — эффективная скорость затухания зависит от длительности тика.
	VelocityDecay      = 0.95
	EjectVelocityDecay = 0.9

	InputDeadzone = 0.1

	// Возрождение
	RespawnDelay = 2000 * time.Millisecond

	// Область видимости
	ViewBase       = 1000.0
	ViewMassFactor = 2.0
	ViewMargin     = 500.0 // запас для центроидов чужих игроков

	// Спавн
	SpawnAttempts  = 10
	SpawnClearance = 200.0 // минимум от поверхности чужих клеток

	// Прочее
	NameMaxLen      = 15
	DefaultName     = "Cell"
	LeaderboardSize = 10
)
