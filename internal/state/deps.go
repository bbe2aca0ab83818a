package state

import (
	"go-hongo-shooter/internal/app"
	"go-hongo-shooter/internal/assets"
	"go-hongo-shooter/internal/storage"

	"golang.org/x/image/font"
)

// Deps — общие ресурсы, которые состояния передают друг другу.
type Deps struct {
	Store       storage.Store
	Sound       app.SoundPlayer
	Sprites     *assets.SpriteManager
	HUDFace     font.Face
	OverlayFace font.Face
	Seed        int64
}
