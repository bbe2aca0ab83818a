// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind    int // визуальный вид, 1 или 2; на поведение не влияет
	GroupID int // номер группы, 0 для одиночных врагов
}
