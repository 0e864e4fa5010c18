package autocomplete

// View is what the controller needs from the screen: an input field and the
// dropdown attached to it.
type View interface {
	// SetDropdown replaces the dropdown content
	SetDropdown(list ListModel)
	// SetDropdownVisible shows or hides the dropdown
	SetDropdownVisible(visible bool)
	// Highlight marks entry index as active; -1 clears the mark
	Highlight(index int)
	// ScrollIntoView makes entry index visible
	ScrollIntoView(index int)
	// InputValue returns the raw text of the input
	InputValue() string
	// SetInputValue replaces the input text. It must not be reported back
	// to the controller as a text change.
	SetInputValue(value string)
	// FocusInput moves focus to the input
	FocusInput()
}
