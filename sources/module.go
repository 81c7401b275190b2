package sources

import (
	"github.com/reusee/csl/logs"
	"github.com/reusee/csl/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}
