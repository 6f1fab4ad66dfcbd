package main

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// newFace returns Go Regular at size, or the 7x13 bitmap face if the TTF
// cannot be parsed.
func newFace(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("font: %v; using the basic face", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}
