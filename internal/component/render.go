// component/render.go
package component

// Renderable — компонент для отрисовки.
// Width/Height — размер на экране, спрайт масштабируется под него.
type Renderable struct {
	Sprite        string
	Width, Height float64
}
