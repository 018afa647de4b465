package app

import (
	"github.com/specialistvlad/metaprop/internal/registry"
	"github.com/specialistvlad/metaprop/modules/timemachine"
)

// coreModules is the definitive list of all compiled classes that are part
// of the binary.
var coreModules = []registry.Module{
	&timemachine.Module{},
}
