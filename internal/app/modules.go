package app

import (
	"github.com/vk/mendgrid/internal/registry"
	"github.com/vk/mendgrid/modules/restore"
	"github.com/vk/mendgrid/modules/strip_lines"
)

// coreModules is the definitive list of all step modules that are compiled
// into the mendgrid binary.
var coreModules = []registry.Module{
	&restore.Module{},
	&strip_lines.Module{},
}
