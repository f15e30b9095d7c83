package scenes

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/common"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/scene"
)

// menuEvent wakes the current scene so it can return the command a button
// click chose.
const menuEvent = "menu"

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	hoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimText     = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	errorText   = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
)

type menuItem struct {
	label   string
	onClick func()
}

type menuLine struct {
	text  string
	color color.Color
}

// menuSpec describes a centred panel with a title, some lines of text and a
// column of buttons.
type menuSpec struct {
	title string
	lines []menuLine
	items []menuItem
	// columns lays the buttons out in a grid when greater than one.
	columns int
}

// menu is the shared part of every ebitenui based scene. Button handlers run
// inside ui.Update, so they record a command with choose and the scene
// returns it from the next Input call.
type menu struct {
	ctx     *scene.Context
	ui      *ebitenui.UI
	pending scene.Command
}

func (m *menu) build(spec menuSpec) {
	m.ui = buildMenu(m.ctx, spec)
}

func (m *menu) choose(cmd scene.Command) {
	m.pending = cmd
	m.ctx.Post(input.Event{Type: input.User, Name: menuEvent})
}

// take returns and clears the chosen command.
func (m *menu) take() scene.Command {
	cmd := m.pending
	m.pending = scene.Continue()
	return cmd
}

func (m *menu) Exit() {}

func (m *menu) Update(int) {
	if m.ui != nil {
		m.ui.Update()
	}
}

func (m *menu) Draw(screen *ebiten.Image) {
	if m.ui != nil {
		m.ui.Draw(screen)
	}
}

func buildMenu(ctx *scene.Context, spec menuSpec) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)
	hoverImg := imageui.NewNineSliceColor(hoverColor)

	titleFace := ctx.Assets.Font(ctx.Assets.Large)
	face := ctx.Assets.Font(ctx.Assets.Medium)
	smallFace := ctx.Assets.Font(ctx.Assets.Small)

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(spec.title, &titleFace, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range spec.lines {
		c := line.color
		if c == nil {
			c = dimText
		}
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line.text, &smallFace, c),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	buttons := panel
	if spec.columns > 1 {
		buttons = widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(spec.columns),
				widget.GridLayoutOpts.Spacing(8, 6),
			)),
			widget.ContainerOpts.WidgetOpts(center),
		)
		panel.AddChild(buttons)
	}
	for _, item := range spec.items {
		onClick := item.onClick
		buttons.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(item.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
