package defs

import (
	"errors"
	"fmt"
	"sort"
)

// SpawnPolicy определяет, как появляются враги.
type SpawnPolicy string

const (
	SpawnSingle SpawnPolicy = "single" // по одному врагу, замена сразу после гибели или ухода
	SpawnGroup  SpawnPolicy = "group"  // горизонтальная группа, когда враги закончились
)

// FallPolicy определяет вертикальную скорость врагов.
type FallPolicy string

const (
	FallRandom      FallPolicy = "random"       // случайная скорость в [MinFallSpeed, MaxFallSpeed] на каждого врага
	FallFixed       FallPolicy = "fixed"        // FallSpeed для всей группы
	FallScoreScaled FallPolicy = "score_scaled" // FallSpeed + FallSpeedPerPoint*score, не больше MaxFallSpeed
)

// ScorePolicy определяет начисление очков за сбитого врага.
type ScorePolicy string

const (
	ScoreFlat     ScorePolicy = "flat"     // фиксированные 10 очков
	ScoreDistance ScorePolicy = "distance" // max(5, 300 - расстояние до игрока)
)

// EnemyFireDef описывает ответный огонь врагов.
type EnemyFireDef struct {
	Enabled          bool    `json:"enabled"`
	Chance           float64 `json:"chance"`           // вероятность выстрела каждого врага за бросок
	ChancePerPoint   float64 `json:"chance_per_point"` // прибавка к вероятности за очко
	MaxChance        float64 `json:"max_chance"`
	Cooldown         float64 `json:"cooldown"` // секунды между бросками
	CooldownPerPoint float64 `json:"cooldown_per_point"`
	MinCooldown      float64 `json:"min_cooldown"`
}

// VariantDefinition holds the tunable rules of one game variant.
type VariantDefinition struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	SpawnPolicy  SpawnPolicy `json:"spawn_policy"`
	GroupSize    int         `json:"group_size"`
	GroupSpacing float64     `json:"group_spacing"`

	FallPolicy        FallPolicy `json:"fall_policy"`
	FallSpeed         float64    `json:"fall_speed"`
	MinFallSpeed      float64    `json:"min_fall_speed"`
	MaxFallSpeed      float64    `json:"max_fall_speed"`
	FallSpeedPerPoint float64    `json:"fall_speed_per_point"`

	DriftAmplitude float64 `json:"drift_amplitude"`
	DriftFrequency float64 `json:"drift_frequency"`

	ScorePolicy     ScorePolicy  `json:"score_policy"`
	EscapeCostsLife bool         `json:"escape_costs_life"`
	ClearOnGameOver bool         `json:"clear_on_game_over"`
	EnemyFire       EnemyFireDef `json:"enemy_fire"`
}

// ErrUnknownVariant возвращается, если вариант не найден в библиотеке.
var ErrUnknownVariant = errors.New("unknown variant")

// MinEnemyFireCooldown — нижняя граница интервала вражеского огня.
const MinEnemyFireCooldown = 0.2

const (
	VariantClassic     = "classic"
	VariantRetaliation = "retaliation"
	VariantWaves       = "waves"
)

// DefaultVariantID — вариант по умолчанию
const DefaultVariantID = VariantClassic

// VariantLibrary — библиотека вариантов игры по ID.
var VariantLibrary = map[string]VariantDefinition{
	VariantClassic: {
		ID:              VariantClassic,
		Name:            "Clásico",
		SpawnPolicy:     SpawnSingle,
		GroupSize:       1,
		FallPolicy:      FallRandom,
		MinFallSpeed:    180,
		MaxFallSpeed:    270,
		ScorePolicy:     ScoreDistance,
		EscapeCostsLife: true,
		ClearOnGameOver: false,
	},
	VariantRetaliation: {
		ID:              VariantRetaliation,
		Name:            "Contraataque",
		SpawnPolicy:     SpawnGroup,
		GroupSize:       3,
		GroupSpacing:    60,
		FallPolicy:      FallFixed,
		FallSpeed:       120,
		DriftAmplitude:  40,
		DriftFrequency:  2,
		ScorePolicy:     ScoreFlat,
		EscapeCostsLife: true,
		ClearOnGameOver: true,
		EnemyFire: EnemyFireDef{
			Enabled:     true,
			Chance:      0.3,
			MaxChance:   0.3,
			Cooldown:    1.0,
			MinCooldown: MinEnemyFireCooldown,
		},
	},
	VariantWaves: {
		ID:                VariantWaves,
		Name:              "Oleadas",
		SpawnPolicy:       SpawnGroup,
		GroupSize:         3,
		GroupSpacing:      60,
		FallPolicy:        FallScoreScaled,
		FallSpeed:         100,
		MaxFallSpeed:      320,
		FallSpeedPerPoint: 0.5,
		ScorePolicy:       ScoreFlat,
		EscapeCostsLife:   false,
		ClearOnGameOver:   true,
		EnemyFire: EnemyFireDef{
			Enabled:          true,
			Chance:           0.2,
			ChancePerPoint:   0.002,
			MaxChance:        0.6,
			Cooldown:         1.2,
			CooldownPerPoint: 0.004,
			MinCooldown:      MinEnemyFireCooldown,
		},
	},
}

// Variant возвращает определение варианта по ID.
func Variant(id string) (VariantDefinition, error) {
	def, ok := VariantLibrary[id]
	if !ok {
		return VariantDefinition{}, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return def, nil
}

// VariantIDs возвращает ID всех вариантов в стабильном порядке:
// сначала встроенные, затем загруженные по алфавиту.
func VariantIDs() []string {
	builtin := []string{VariantClassic, VariantRetaliation, VariantWaves}
	ids := make([]string, 0, len(VariantLibrary))
	seen := make(map[string]bool)
	for _, id := range builtin {
		if _, ok := VariantLibrary[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var extra []string
	for id := range VariantLibrary {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// Validate проверяет согласованность параметров.
func (v VariantDefinition) Validate() error {
	if v.ID == "" {
		return errors.New("variant id is empty")
	}
	switch v.SpawnPolicy {
	case SpawnSingle:
	case SpawnGroup:
		if v.GroupSize < 1 {
			return fmt.Errorf("variant %s: group_size must be positive, got %d", v.ID, v.GroupSize)
		}
		if v.GroupSpacing < 0 {
			return fmt.Errorf("variant %s: group_spacing must not be negative", v.ID)
		}
	default:
		return fmt.Errorf("variant %s: unknown spawn_policy %q", v.ID, v.SpawnPolicy)
	}
	switch v.FallPolicy {
	case FallRandom:
		if v.MinFallSpeed <= 0 || v.MaxFallSpeed < v.MinFallSpeed {
			return fmt.Errorf("variant %s: bad random fall speed range [%v, %v]", v.ID, v.MinFallSpeed, v.MaxFallSpeed)
		}
	case FallFixed, FallScoreScaled:
		if v.FallSpeed <= 0 {
			return fmt.Errorf("variant %s: fall_speed must be positive", v.ID)
		}
	default:
		return fmt.Errorf("variant %s: unknown fall_policy %q", v.ID, v.FallPolicy)
	}
	switch v.ScorePolicy {
	case ScoreFlat, ScoreDistance:
	default:
		return fmt.Errorf("variant %s: unknown score_policy %q", v.ID, v.ScorePolicy)
	}
	if f := v.EnemyFire; f.Enabled {
		if f.Chance < 0 || f.Chance > 1 {
			return fmt.Errorf("variant %s: enemy_fire.chance must be in [0,1]", v.ID)
		}
		if f.Cooldown <= 0 {
			return fmt.Errorf("variant %s: enemy_fire.cooldown must be positive", v.ID)
		}
	}
	return nil
}

// FallSpeedFor возвращает скорость падения группы при данном счёте.
// Для FallRandom возвращает нижнюю границу диапазона.
func (v VariantDefinition) FallSpeedFor(score int) float64 {
	switch v.FallPolicy {
	case FallScoreScaled:
		speed := v.FallSpeed + v.FallSpeedPerPoint*float64(score)
		if v.MaxFallSpeed > 0 && speed > v.MaxFallSpeed {
			speed = v.MaxFallSpeed
		}
		return speed
	case FallRandom:
		return v.MinFallSpeed
	}
	return v.FallSpeed
}

// FireChanceFor возвращает вероятность выстрела одного врага при данном счёте.
func (f EnemyFireDef) FireChanceFor(score int) float64 {
	chance := f.Chance + f.ChancePerPoint*float64(score)
	if f.MaxChance > 0 && chance > f.MaxChance {
		chance = f.MaxChance
	}
	if chance > 1 {
		chance = 1
	}
	return chance
}

// CooldownFor возвращает интервал между бросками при данном счёте (не меньше 200 мс).
func (f EnemyFireDef) CooldownFor(score int) float64 {
	cooldown := f.Cooldown - f.CooldownPerPoint*float64(score)
	floor := f.MinCooldown
	if floor < MinEnemyFireCooldown {
		floor = MinEnemyFireCooldown
	}
	if cooldown < floor {
		cooldown = floor
	}
	return cooldown
}
