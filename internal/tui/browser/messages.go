package browser

// copiedMsg reports a successful clipboard write.
type copiedMsg struct {
	What string
}

// copyFailedMsg reports a clipboard failure.
type copyFailedMsg struct {
	Err error
}
