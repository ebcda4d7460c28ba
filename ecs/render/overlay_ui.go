package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// OverlayUI mirrors screen-space Text components into ebitenui labels. Each
// label is anchored to the top-left corner at the entity's ScreenAnchor.
type OverlayUI struct {
	ui     *ebitenui.UI
	root   *widget.Container
	face   ebtext.Face
	labels map[ecs.Entity]*widget.Text
}

func NewOverlayUI() *OverlayUI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	return &OverlayUI{
		ui:     &ebitenui.UI{Container: root},
		root:   root,
		face:   face,
		labels: make(map[ecs.Entity]*widget.Text),
	}
}

// Update copies the current text values into the widgets and lays them out.
func (o *OverlayUI) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ScreenSpaceComponent.Kind(), component.TextComponent.Kind(), func(e ecs.Entity, _ *component.ScreenSpace, txt *component.Text) {
		label, ok := o.labels[e]
		if !ok {
			label = o.addLabel(w, e, txt)
		}
		label.Label = txt.Value
	})
	o.ui.Update()
}

func (o *OverlayUI) addLabel(w *ecs.World, e ecs.Entity, txt *component.Text) *widget.Text {
	anchor := component.ScreenAnchor{}
	if a, ok := ecs.Get(w, e, component.ScreenAnchorComponent.Kind()); ok {
		anchor = *a
	}
	var c color.Color = color.White
	if txt.Color != nil {
		c = txt.Color
	}

	label := widget.NewText(
		widget.TextOpts.Text(txt.Value, &o.face, c),
	)

	// A nested anchor container carries the per-label padding.
	holder := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: int(anchor.Y), Left: int(anchor.X)}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	holder.AddChild(label)
	o.root.AddChild(holder)
	o.labels[e] = label
	return label
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if o == nil || screen == nil {
		return
	}
	o.ui.Draw(screen)
}
