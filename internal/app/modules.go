package app

import (
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/nodes/clearcolour"
	"github.com/vk/rendergraph/nodes/forward"
	"github.com/vk/rendergraph/nodes/frame"
	"github.com/vk/rendergraph/nodes/shadow"
	"github.com/vk/rendergraph/nodes/skybox"
)

// coreModules is the definitive list of all node type modules that are
// compiled into the rendergraph binary.
var coreModules = []registry.Module{
	frame.Module{},
	clearcolour.Module{},
	skybox.Module{},
	forward.Module{},
	shadow.Module{},
}
