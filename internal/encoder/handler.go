package encoder

// Handler receives decoded gestures. Implementations should return quickly,
// since the decoder calls them from its polling loop.
type Handler interface {
	RotateLeft()
	RotateRight()
	Press()
	Release()
}

// NopHandler ignores every gesture. Embed it to handle only a subset.
type NopHandler struct{}

func (NopHandler) RotateLeft()  {}
func (NopHandler) RotateRight() {}
func (NopHandler) Press()       {}
func (NopHandler) Release()     {}
