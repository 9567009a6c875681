package scripts

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jlex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
