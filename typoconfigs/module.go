package typoconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"

	"github.com/reusee/typogenetics/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
