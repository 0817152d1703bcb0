package window

// WindowBuilderOption is a functional option applied to a window during construction via NewWindow.
type WindowBuilderOption func(*hostWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - WindowBuilderOption: a function that applies the title option to a window
func WithTitle(title string) WindowBuilderOption {
	return func(w *hostWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width in pixels.
//
// Parameters:
//   - width: the initial width (ignored if <= 0)
//
// Returns:
//   - WindowBuilderOption: a function that applies the width option to a window
func WithWidth(width int) WindowBuilderOption {
	return func(w *hostWindow) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithHeight sets the initial window height in pixels.
//
// Parameters:
//   - height: the initial height (ignored if <= 0)
//
// Returns:
//   - WindowBuilderOption: a function that applies the height option to a window
func WithHeight(height int) WindowBuilderOption {
	return func(w *hostWindow) {
		if height > 0 {
			w.height = height
		}
	}
}
