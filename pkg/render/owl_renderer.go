// pkg/render/owl_renderer.go
package render

import (
	"image/color"
	"math"

	"go-owl-patrol/internal/component"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/entity"
	"go-owl-patrol/internal/types"
	"go-owl-patrol/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ellipseSegments = 32
	bubblePadding   = 8
	bubbleLineH     = 16
	bubbleTail      = 10
	fixedItText     = "Fixed it!"
	sleepText       = "Zzz"
)

// OwlRenderer draws the owl, the bugs and the speech bubbles on top of the host screen.
type OwlRenderer struct {
	palette  Palette
	fontFace font.Face
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

func NewOwlRenderer(face font.Face, palette Palette) *OwlRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &OwlRenderer{
		palette:  palette,
		fontFace: face,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, ellipseSegments+1),
		fillIs:   make([]uint16, 0, ellipseSegments*3),
	}
}

// Draw renders one frame of the widget. cursor is used for the owl's gaze when it has no target.
func (r *OwlRenderer) Draw(screen *ebiten.Image, store *entity.Store, cursor types.Position) {
	t := store.Now.Seconds()

	for _, bug := range store.Bugs() {
		r.drawBug(screen, bug, t)
	}
	owl := store.Owl()
	r.drawOwl(screen, owl, cursor, t)

	for _, ft := range store.Feedback {
		r.drawText(screen, ft.Text, ft.X, ft.Y+ft.OffsetY, WithAlpha(r.palette.Feedback, ft.Alpha))
	}
	r.drawBubble(screen, owl)
}

func (r *OwlRenderer) drawBug(screen *ebiten.Image, bug *component.Bug, t float64) {
	x, y := float32(bug.X), float32(bug.Y)
	radius := float32(config.BugRadius)

	if bug.IsSquashed {
		// Клякса бледнеет к моменту удаления.
		alpha := bug.RemoveIn.Seconds() / config.SquashRemoveDelay.Seconds()
		r.fillEllipse(screen, bug.X, bug.Y, config.BugRadius*1.3, config.BugRadius*0.45, WithAlpha(r.palette.BugBody, 0.3+0.7*alpha))
		return
	}

	wiggle := float32(math.Sin(t*20+bug.X)) * 3
	for i := -1; i <= 1; i++ {
		legY := y + float32(i)*radius*0.5
		vector.StrokeLine(screen, x-radius*0.6, legY, x-radius*1.3, legY+wiggle, 2, r.palette.BugLeg, true)
		vector.StrokeLine(screen, x+radius*0.6, legY, x+radius*1.3, legY-wiggle, 2, r.palette.BugLeg, true)
	}
	r.fillEllipse(screen, bug.X, bug.Y, config.BugRadius*0.75, config.BugRadius, r.palette.BugBody)
	vector.DrawFilledCircle(screen, x, y-radius, radius*0.45, r.palette.BugBody, true)
	vector.StrokeLine(screen, x, y-radius*0.7, x, y+radius*0.9, 1, DarkenColor(r.palette.BugLeg), true)
	r.drawText(screen, "BUG", bug.X, bug.Y-config.BugRadius*1.8, r.palette.BugLabel)
}

func (r *OwlRenderer) drawOwl(screen *ebiten.Image, owl *component.Owl, cursor types.Position, t float64) {
	s := owl.Scale
	w := config.OwlBodyWidth * s
	h := config.OwlBodyHeight * s
	x := owl.Position.X
	feet := owl.Position.Y

	r.fillEllipse(screen, x, feet, w*0.45, 6*s, r.palette.Shadow)

	bob := 0.0
	switch owl.Action {
	case component.ActionWalking, component.ActionHunting:
		bob = -math.Abs(math.Sin(t*10)) * 4 * s
	case component.ActionCelebrating:
		bob = -math.Abs(math.Sin(t*8)) * 16 * s
	case component.ActionSleeping:
		bob = math.Sin(t*2) * 1.5 * s
	case component.ActionIdle, component.ActionAttacking, component.ActionTellingJoke:
	}
	cy := feet - h/2 + bob
	top := cy - h/2

	dir := 1.0
	if !owl.FacingRight {
		dir = -1
	}

	// Лапы
	r.fillEllipse(screen, x-w*0.15, feet-2*s, w*0.1, 4*s, r.palette.OwlBeak)
	r.fillEllipse(screen, x+w*0.15, feet-2*s, w*0.1, 4*s, r.palette.OwlBeak)

	// Уши
	r.fillTriangle(screen,
		x-w*0.4, top+h*0.12, x-w*0.3, top-h*0.08, x-w*0.15, top+h*0.05, r.palette.OwlBody)
	r.fillTriangle(screen,
		x+w*0.4, top+h*0.12, x+w*0.3, top-h*0.08, x+w*0.15, top+h*0.05, r.palette.OwlBody)

	// Тело и живот
	r.fillEllipse(screen, x, cy, w/2, h/2, r.palette.OwlBody)
	r.fillEllipse(screen, x+dir*w*0.03, cy+h*0.12, w*0.32, h*0.3, r.palette.OwlBelly)

	// Крылья; в замахе ближнее к цели крыло поднято.
	wingLift := 0.0
	if owl.Action == component.ActionAttacking {
		wingLift = h * 0.25
	}
	wing := DarkenColor(r.palette.OwlBody)
	wing.R, wing.G, wing.B = wing.R+30, wing.G+30, wing.B+30
	r.fillEllipse(screen, x-dir*w*0.48, cy+h*0.05, w*0.12, h*0.28, wing)
	r.fillEllipse(screen, x+dir*w*0.48, cy+h*0.05-wingLift, w*0.12, h*0.28, wing)

	// Глаза
	eyeR := w * 0.16
	eyeY := top + h*0.3
	for _, side := range []float64{-1, 1} {
		ex := x + side*w*0.2 + dir*w*0.03
		if owl.Action == component.ActionSleeping {
			vector.StrokeLine(screen, float32(ex-eyeR*0.8), float32(eyeY), float32(ex+eyeR*0.8), float32(eyeY), float32(2*s), color.Black, true)
			continue
		}
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), float32(eyeR), color.White, true)
		vector.StrokeCircle(screen, float32(ex), float32(eyeY), float32(eyeR), float32(1.5*s), DarkenColor(r.palette.OwlBody), true)

		look := cursor
		if owl.LookAt != nil {
			look = *owl.LookAt
		}
		gaze, _ := utils.Direction(types.Position{X: ex, Y: eyeY}, look)
		px := ex + gaze.X*eyeR*0.45
		py := eyeY + gaze.Y*eyeR*0.45
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(eyeR*0.45), color.Black, true)
	}

	// Клюв
	bx := x + dir*w*0.03
	r.fillTriangle(screen,
		bx-w*0.06, eyeY+eyeR*0.6, bx+w*0.06, eyeY+eyeR*0.6, bx, eyeY+eyeR*1.5, r.palette.OwlBeak)
}

// drawBubble draws the speech bubble over the owl's head: a joke, the squash cheer or a snore.
func (r *OwlRenderer) drawBubble(screen *ebiten.Image, owl *component.Owl) {
	var msg string
	switch owl.Action {
	case component.ActionTellingJoke:
		msg = owl.Joke
	case component.ActionCelebrating:
		if owl.PhaseDuration == config.CelebrateDuration {
			msg = fixedItText
		}
	case component.ActionSleeping:
		msg = sleepText
	case component.ActionIdle, component.ActionWalking, component.ActionHunting, component.ActionAttacking:
	}
	if msg == "" {
		return
	}

	lines := utils.WrapText(msg, config.BubbleMaxChars)
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	bw := float64(longest*config.TextCharWidth + 2*bubblePadding)
	bh := float64(len(lines)*bubbleLineH + bubblePadding)

	_, top, _, _ := owl.Bounds()
	bx := owl.Position.X - bw/2
	by := top - bh - bubbleTail - 4

	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), r.palette.Bubble, true)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 1.5, r.palette.BubbleStroke, true)
	cx := owl.Position.X
	r.fillTriangle(screen, cx-6, by+bh, cx+6, by+bh, cx, by+bh+bubbleTail, r.palette.Bubble)

	for i, l := range lines {
		ly := by + float64(bubblePadding) + float64(i*bubbleLineH) + 10
		text.Draw(screen, l, r.fontFace, int(bx)+bubblePadding, int(ly), r.palette.Text)
	}
}

// drawText draws s centred on x with its baseline at y.
func (r *OwlRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	bounds := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, int(x)-bounds.Dx()/2, int(y), clr)
}

func (r *OwlRenderer) fillEllipse(target *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	path := vector.Path{}
	for i := 0; i < ellipseSegments; i++ {
		angle := 2 * math.Pi * float64(i) / ellipseSegments
		px := cx + rx*math.Cos(angle)
		py := cy + ry*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	r.fillPath(target, &path, clr)
}

func (r *OwlRenderer) fillTriangle(target *ebiten.Image, x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	path := vector.Path{}
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()
	r.fillPath(target, &path, clr)
}

func (r *OwlRenderer) fillPath(target *ebiten.Image, path *vector.Path, clr color.Color) {
	// Вершины ждут цвет без предумножения альфы.
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
