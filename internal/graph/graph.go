package graph

import (
	"sync"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/js_scanner"
	"github.com/kilnjs/kiln/internal/logger"
)

// Execution orders start at this sentinel and are assigned densely from zero
// by the link stage. The sentinel doubles as a "not yet visited" marker.
const ExecOrderUnassigned = ^uint32(0)

// A module inside the bundle: source text plus the fact sheet produced by
// scanning it
type NormalModule struct {
	Source logger.Source

	// The result of the scan phase, merged in when the module is added
	js_scanner.ScanResult

	ExecOrder uint32
}

// A module outside the bundle. It has no source and no scan result but still
// gets an execution order so it can be scheduled before its importers.
type ExternalModule struct {
	Path      logger.Path
	ExecOrder uint32
}

// The whole-graph module store. Normal and external modules live in separate
// dense arrays; an ast.ModuleID says which array and where.
//
// The mutex distinguishes the two access patterns: graph assembly and the
// link stage are single-writer passes that take the write lock once for the
// whole pass, while anything inspecting a finished graph takes the read lock.
type ModuleTable struct {
	sync.RWMutex

	NormalModules   []NormalModule
	ExternalModules []ExternalModule
}

// AddScannedModule appends a scanned module to the table. Source indices are
// assigned before scanning and must match the module's final position, so
// callers add modules in source-index order. Callers must hold the write
// lock.
func (t *ModuleTable) AddScannedModule(source logger.Source, result js_scanner.ScanResult) ast.ModuleID {
	index := uint32(len(t.NormalModules))
	if source.Index != index {
		panic("Internal error")
	}
	t.NormalModules = append(t.NormalModules, NormalModule{
		Source:     source,
		ScanResult: result,
		ExecOrder:  ExecOrderUnassigned,
	})
	return ast.MakeNormalModuleID(index)
}

// AddExternalModule appends an external module. Callers must hold the write
// lock.
func (t *ModuleTable) AddExternalModule(path logger.Path) ast.ModuleID {
	index := uint32(len(t.ExternalModules))
	t.ExternalModules = append(t.ExternalModules, ExternalModule{
		Path:      path,
		ExecOrder: ExecOrderUnassigned,
	})
	return ast.MakeExternalModuleID(index)
}
