package debugs

import (
	"github.com/reusee/dscope"

	"github.com/reusee/typogenetics/logs"
	"github.com/reusee/typogenetics/typoconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs typoconfigs.Module
}
