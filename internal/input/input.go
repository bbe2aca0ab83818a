// Package input описывает снимок клавиатуры за один кадр.
package input

// State — состояние управления на текущем кадре.
// Left/Right/Fire — удерживаемые клавиши, Restart/Pause — нажатия на этом кадре.
type State struct {
	Left    bool
	Right   bool
	Fire    bool
	Restart bool
	Pause   bool
}

// Direction возвращает -1, 0 или 1. Влево имеет приоритет.
func (s State) Direction() int {
	if s.Left {
		return -1
	}
	if s.Right {
		return 1
	}
	return 0
}
