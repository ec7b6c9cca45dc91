package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoticeData is a short on-screen message that fades out.
type NoticeData struct {
	Text  string
	Fade  *gween.Tween
	Alpha float32
}

var Notice = donburi.NewComponentType[NoticeData]()
