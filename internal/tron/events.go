package tron

// Event is delivered to the presentation layer on Controller.Events.
type Event interface {
	isEvent()
}

// FrameEvent carries the state after an ordinary tick or a transition.
type FrameEvent struct {
	Frame Frame
}

// EndEvent is sent once when a level finishes.
type EndEvent struct {
	Frame  Frame
	Result Result
}

func (FrameEvent) isEvent() {}
func (EndEvent) isEvent()   {}
