// pkg/render/engo/surface.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// spriteEntity is the ECS triple backing one blit slot. Slots persist
// across frames so the render system keeps its batches; each frame the
// slot is reassigned whatever drawable lands in its position.
type spriteEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	z      float32
}

// textEntity backs one line of overlay text. Text entities are
// recreated every frame because their content changes.
type textEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// Surface renders blit and text operations through Engo's render
// system. It implements the engine's draw surface contract. Retained
// sprite entities are keyed by blit order within the frame, not by the
// source image: the same image blitted twice occupies two slots, and a
// slot's z-index is its blit position, so later blits paint on top of
// earlier ones. The game's element list order is stable frame to frame,
// which keeps each slot bound to the same element in practice.
type Surface struct {
	renderSystem *common.RenderSystem
	width        int
	height       int

	slots []*spriteEntity
	used  int
	texts []*textEntity
	font  *common.Font
}

// NewSurface creates a surface that draws through the given render
// system at the given logical size.
func NewSurface(renderSystem *common.RenderSystem, width, height int) *Surface {
	return &Surface{
		renderSystem: renderSystem,
		width:        width,
		height:       height,
	}
}

// SetFont sets the font used for overlay text. Text draws are skipped
// while no font is set.
func (s *Surface) SetFont(font *common.Font) {
	s.font = font
}

// Size returns the logical surface size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// BeginFrame resets per-frame state. Text entities from the previous
// frame are removed; sprite slots are kept and reclaimed in blit order.
func (s *Surface) BeginFrame() {
	for _, text := range s.texts {
		s.renderSystem.Remove(text.basic)
	}
	s.texts = s.texts[:0]
	s.used = 0
}

// EndFrame removes sprite slots beyond the last blit of this frame.
func (s *Surface) EndFrame() {
	for _, slot := range s.slots[s.used:] {
		s.renderSystem.Remove(slot.basic)
	}
	s.slots = s.slots[:s.used]
}

// Blit draws img with its top-left corner at (x, y), claiming the next
// slot in frame order.
func (s *Surface) Blit(img render.Image, x, y float64) {
	sprite, ok := img.(*Sprite)
	if !ok {
		return
	}

	slot := s.claimSlot()
	slot.render.Drawable = sprite.drawable
	slot.space.Position = engo.Point{X: float32(x), Y: float32(y)}
	slot.space.Width = float32(img.Width())
	slot.space.Height = float32(img.Height())
}

func (s *Surface) claimSlot() *spriteEntity {
	if s.used < len(s.slots) {
		slot := s.slots[s.used]
		s.used++
		return slot
	}

	slot := &spriteEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Color: color.White,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: 0, Y: 0},
		},
	}
	slot.z = float32(len(s.slots))
	slot.render.SetZIndex(slot.z)
	s.renderSystem.Add(&slot.basic, &slot.render, &slot.space)
	s.slots = append(s.slots, slot)
	s.used++
	return slot
}

// DrawText renders one line of text at (x, y). No-op until a font has
// been set.
func (s *Surface) DrawText(text string, x, y float64) {
	if s.font == nil || text == "" {
		return
	}

	entity := &textEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Text{
				Font: s.font,
				Text: text,
			},
			Color: color.White,
		},
		space: common.SpaceComponent{
			Position: engo.Point{X: float32(x), Y: float32(y)},
			Width:    float32(len(text) * 8),
			Height:   16,
		},
	}
	// Above any sprite slot.
	entity.render.SetZIndex(1000)
	s.renderSystem.Add(&entity.basic, &entity.render, &entity.space)
	s.texts = append(s.texts, entity)
}
