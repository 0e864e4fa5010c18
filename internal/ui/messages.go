package ui

// callbackMsg carries an autocomplete callback onto the update loop
type callbackMsg struct {
	fn func()
}

// toastExpiredMsg removes a toast once its lifetime is over
type toastExpiredMsg struct {
	id int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
