package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/drop/internal/config"
)

var (
	skyColor    = color.RGBA{R: 14, G: 22, B: 40, A: 255}
	dropColor   = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	shineColor  = color.RGBA{R: 200, G: 230, B: 255, A: 255}
	bucketColor = color.RGBA{R: 230, G: 130, B: 40, A: 255}
	rimColor    = color.RGBA{R: 255, G: 180, B: 90, A: 255}
)

// Sprites holds the droplet and bucket images.
type Sprites struct {
	Droplet *ebiten.Image
	Bucket  *ebiten.Image
}

// LoadSprites loads the configured PNG sprites. Missing paths are drawn
// procedurally at the given sizes.
func LoadSprites(assets config.AssetsConfig, cfg config.DropConfig) (*Sprites, error) {
	droplet, err := loadOrDraw(assets.DropletImage, func() *ebiten.Image {
		return drawDroplet(int(cfg.Raindrop.Width), int(cfg.Raindrop.Height))
	})
	if err != nil {
		return nil, fmt.Errorf("load droplet image: %w", err)
	}
	bucket, err := loadOrDraw(assets.BucketImage, func() *ebiten.Image {
		return drawBucket(int(cfg.Bucket.Width), int(cfg.Bucket.Height))
	})
	if err != nil {
		return nil, fmt.Errorf("load bucket image: %w", err)
	}
	return &Sprites{Droplet: droplet, Bucket: bucket}, nil
}

func loadOrDraw(path string, draw func() *ebiten.Image) (*ebiten.Image, error) {
	if path == "" {
		return draw(), nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// drawDroplet draws a teardrop: a round body tapering to a point at the top.
func drawDroplet(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx := float32(w) / 2
	r := float32(min(w, h)) * 0.32
	bodyY := float32(h) - r - 2

	// Stacked circles shrinking towards the tip
	const steps = 12
	for i := range steps {
		t := float32(i) / steps
		y := bodyY - t*(bodyY-2)
		vector.DrawFilledCircle(img, cx, y, r*(1-t), dropColor, true)
	}
	vector.DrawFilledCircle(img, cx-r*0.35, bodyY-r*0.3, r*0.2, shineColor, true)
	return img
}

// drawBucket draws an open bucket with a rim.
func drawBucket(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	rim := fh * 0.12

	vector.DrawFilledRect(img, fw*0.08, rim, fw*0.84, fh-rim, bucketColor, true)
	vector.DrawFilledRect(img, 0, 0, fw, rim, rimColor, true)
	vector.StrokeLine(img, fw*0.2, fh*0.5, fw*0.8, fh*0.5, 2, rimColor, true)
	return img
}

// drawAt draws img with its top-left corner at (x, y), scaled to w x h pixels.
func drawAt(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}
