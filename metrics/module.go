package metrics

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Recorder() *Recorder {
	return NewRecorder()
}
