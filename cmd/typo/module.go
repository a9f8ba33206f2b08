package main

import (
	"github.com/reusee/dscope"

	"github.com/reusee/typogenetics/debugs"
	"github.com/reusee/typogenetics/sims"
)

type Module struct {
	dscope.Module
	Sims   sims.Module
	Debugs debugs.Module
}
