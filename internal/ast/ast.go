package ast

// This file contains data structures that pass between the per-module scan
// phase and the whole-graph link phase. Nothing in here points at a syntax
// tree; cross-module links are always expressed through indices so a module's
// fact sheet stays self-contained until it's merged into the module table.

import (
	"github.com/kilnjs/kiln/internal/logger"
)

// Modules are scanned in parallel for speed. We want to allow each scan to
// generate symbol IDs that won't conflict with each other. We also want to be
// able to quickly merge symbol tables from all modules into one giant symbol
// table.
//
// We can accomplish both goals by giving each symbol ID two parts: an outer
// index that is unique to the module, and an inner index that increments as
// the scan generates new symbol IDs. Then the whole-graph symbol table can be
// an array of arrays indexed first by outer index, then by inner index. The
// tables can be merged quickly by creating a single outer array containing
// all inner arrays from all scanned modules.
type Ref struct {
	OuterIndex uint32
	InnerIndex uint32
}

var InvalidRef = Ref{^uint32(0), ^uint32(0)}

type ImportKind uint8

const (
	// An ES6 import or re-export statement
	ImportStmt ImportKind = iota

	// A call to "require()"
	ImportRequire

	// An "import()" expression with a string argument
	ImportDynamic
)

// Static imports constrain module execution order. A "require()" call counts
// as static: since import statements are hoisted, required modules still run
// before the module that requires them. Dynamic imports never constrain order.
func (kind ImportKind) IsStatic() bool {
	return kind == ImportStmt || kind == ImportRequire
}

func (kind ImportKind) String() string {
	switch kind {
	case ImportStmt:
		return "import-statement"
	case ImportRequire:
		return "require-call"
	case ImportDynamic:
		return "dynamic-import"
	default:
		panic("Internal error")
	}
}

type ImportRecordFlags uint8

const (
	// If this is true, the import contains syntax like "* as ns". This is used
	// to determine whether modules that have no exports need to be wrapped in a
	// CommonJS wrapper or not.
	ContainsImportStar ImportRecordFlags = 1 << iota

	// If this is true, the import contains an import for the alias "default",
	// either via the "import x from" or "import {default as x} from" syntax.
	ContainsDefaultAlias

	// If this is true, this was originally written as a bare "import 'file'"
	// statement or an import with an empty specifier list.
	IsPlainImport
)

func (flags ImportRecordFlags) Has(flag ImportRecordFlags) bool {
	return (flags & flag) != 0
}

type ImportRecord struct {
	// The specifier exactly as written in the source
	Path  logger.Path
	Range logger.Range

	// A namespace binding synthesized during the scan. Whether it's actually
	// needed (e.g. to hold the "__toESM(require_foo())" value when the target
	// turns out to be CommonJS) is decided later at link time.
	NamespaceRef Ref

	// The target module. Filled in by the resolution step that runs between
	// scanning and linking; invalid until then.
	ResolvedModule ModuleID

	Flags ImportRecordFlags
	Kind  ImportKind
}

type ModuleKind uint8

const (
	// The zero value is deliberately an invalid module so that an unresolved
	// import record is distinguishable from one resolved to module 0
	ModuleNone ModuleKind = iota

	// A module with source text, statements, and an assigned execution order
	ModuleNormal

	// A module outside the bundle. It has no source but still receives an
	// execution order so it can be scheduled as a prerequisite.
	ModuleExternal
)

// A tagged handle for a module in the module table. Cross-module references
// are always this pair, never a pointer.
type ModuleID struct {
	Kind  ModuleKind
	Index uint32
}

func (id ModuleID) IsValid() bool {
	return id.Kind != ModuleNone
}

func MakeNormalModuleID(index uint32) ModuleID {
	return ModuleID{Kind: ModuleNormal, Index: index}
}

func MakeExternalModuleID(index uint32) ModuleID {
	return ModuleID{Kind: ModuleExternal, Index: index}
}
