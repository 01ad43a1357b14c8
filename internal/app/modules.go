package app

import (
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/modules/core"
	"github.com/specialistvlad/uaschema/modules/dataaccess"
	"github.com/specialistvlad/uaschema/modules/diagnostics"
	"github.com/specialistvlad/uaschema/modules/security"
)

// coreModules is the definitive list of all declaration modules that are
// compiled into the uaschema binary. Their order does not matter.
var coreModules = []registry.Module{
	&diagnostics.Module{},
	&security.Module{},
	&dataaccess.Module{},
	&core.Module{},
}

// CoreModules returns the compiled-in declaration modules.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
