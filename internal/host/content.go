package host

import (
	"image/color"

	"futurebuddy-desktop/internal/appcontext"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ContentFunc builds the content hosted by one window. The frontend owns
// what is shown; the shell only places it.
type ContentFunc func(m appcontext.Manifest, w appcontext.WindowConfig) fyne.CanvasObject

// PlaceholderContent shows the product identity until the frontend attaches.
func PlaceholderContent(m appcontext.Manifest, w appcontext.WindowConfig) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(m.ProductName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	items := []fyne.CanvasObject{title}

	if m.Slogan != "" {
		items = append(items, widget.NewLabelWithStyle(m.Slogan, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
	}
	items = append(items, widget.NewLabelWithStyle("v"+m.Version, fyne.TextAlignCenter, fyne.TextStyle{Monospace: true}))

	return container.NewCenter(container.NewVBox(items...))
}

// withMinSize enforces the configured minimum window size through the
// content minimum, which is what the driver honours.
func withMinSize(content fyne.CanvasObject, w appcontext.WindowConfig) fyne.CanvasObject {
	if w.MinWidth == 0 && w.MinHeight == 0 {
		return content
	}

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w.MinWidth, w.MinHeight))
	return container.NewStack(spacer, content)
}
