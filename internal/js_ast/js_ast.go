package js_ast

// Every module is parsed into a separate syntax tree by an upstream parser
// that also resolves all scopes and binds all symbols in the tree before the
// scan pass runs. Identifiers in the tree are referenced by an ast.Ref, which
// is a handle into the symbol arena for the module. The arena is stored as a
// top-level field in the AST so it can be grown (with synthesized bindings)
// without traversing the tree.
//
// Parse trees are intended to be immutable once scanned. The scan pass keeps
// all accumulated state in its own result structure and never stores anything
// on the tree itself.

import (
	"strings"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/logger"
)

type LocRef struct {
	Loc logger.Loc
	Ref ast.Ref
}

type SymbolKind uint8

const (
	// An unbound symbol is one that isn't declared in the module it's
	// referenced in. For example, using "window" without declaring it will be
	// unbound. References to unbound symbols are never recorded by the scan.
	SymbolUnbound SymbolKind = iota

	// Function statements and variables declared using "var" are hoisted out
	// of the scope they are declared in to the closest containing function or
	// module scope
	SymbolHoisted
	SymbolHoistedFunction

	// Generator and async functions are not hoisted, but still have special
	// properties such as being able to overwrite previous functions with the
	// same name
	SymbolGeneratorOrAsyncFunction

	SymbolClass

	// Assigning to a "const" symbol will throw a TypeError at runtime
	SymbolConst

	// A binding synthesized while scanning import and re-export statements
	SymbolImport

	// This annotates all other symbols that don't have special behavior
	SymbolOther
)

func (kind SymbolKind) IsHoisted() bool {
	return kind == SymbolHoisted || kind == SymbolHoistedFunction
}

type Symbol struct {
	// This is the name that came from the parser. Printed names may be renamed
	// later to avoid collisions. Do not use the original name during printing.
	OriginalName string

	// The declaration site, for diagnostics
	Loc logger.Loc

	Kind SymbolKind
}

type ScopeMember struct {
	Ref ast.Ref
	Loc logger.Loc
}

// Only the module scope survives parsing; the scanner resolves export clause
// names through it. Nested scopes have already been flattened into resolved
// refs on the identifiers themselves.
type Scope struct {
	Members map[string]ScopeMember
}

type AST struct {
	Stmts       []Stmt
	ModuleScope *Scope

	// The symbol arena for this module. Handles are stable for the arena's
	// lifetime; the scan appends synthesized bindings to the end.
	Symbols []Symbol
}

type Stmt struct {
	Loc  logger.Loc
	Data S
}

// This interface is never called. Its purpose is to encode a closed sum type
// in Go's type system: one handling branch per variant, and an unrecognized
// variant is a fatal condition.
type S interface {
	isStmt()
}

type SEmpty struct{}

type SComment struct {
	Text string
}

type SDirective struct {
	Value string
}

type SExpr struct {
	Value Expr
}

type SBlock struct {
	Stmts []Stmt
}

type SIf struct {
	Test    Expr
	Yes     Stmt
	NoOrNil *Stmt
}

type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

type Decl struct {
	Binding    Binding
	ValueOrNil Expr
}

type SLocal struct {
	Decls    []Decl
	Kind     LocalKind
	IsExport bool
}

type SFunction struct {
	Fn       Fn
	IsExport bool
}

type SClass struct {
	Class    Class
	IsExport bool
}

// The specifier of an import or re-export statement, exactly as written
type ImportPath struct {
	Text  string
	Range logger.Range
}

// This object represents all of these types of import statements:
//
//	import 'path'
//	import {item1, item2} from 'path'
//	import * as ns from 'path'
//	import defaultItem, {item1, item2} from 'path'
//	import defaultItem, * as ns from 'path'
//
// Many parts are optional and can be combined in different ways. The only
// restriction is that you cannot have both a clause and a star namespace.
type SImport struct {
	// Only valid if this is a star import, in which case it's the binding for
	// the namespace symbol and its Loc is StarNameLoc
	NamespaceRef ast.Ref

	DefaultName *LocRef
	Items       *[]ClauseItem
	StarNameLoc *logger.Loc
	Path        ImportPath
}

// A single specifier inside an import or export clause. For imports, "Alias"
// is the name in the exporting module and "Name" is the local binding. For
// export clauses, "Alias" is the exported name and "OriginalName" is the name
// being exported; "Name.Ref" is only bound for imports since export clause
// names are resolved through the module scope (or synthesized) by the scan.
type ClauseItem struct {
	Alias        string
	AliasLoc     logger.Loc
	Name         LocRef
	OriginalName string
}

// "export {a, b as c}"
type SExportClause struct {
	Items []ClauseItem
}

// "export {a, b as c} from 'path'"
type SExportFrom struct {
	Items []ClauseItem
	Path  ImportPath
}

type ExportStarAlias struct {
	Loc  logger.Loc
	Name string
}

// "export * from 'path'" and "export * as ns from 'path'"
type SExportStar struct {
	Alias *ExportStarAlias
	Path  ImportPath
}

// "export default <expr|function|class>"
type SExportDefault struct {
	Value ExprOrStmt // The statement may be an SFunction or SClass
}

type ExprOrStmt struct {
	Expr *Expr
	Stmt *Stmt
}

func (*SEmpty) isStmt()         {}
func (*SComment) isStmt()       {}
func (*SDirective) isStmt()     {}
func (*SExpr) isStmt()          {}
func (*SBlock) isStmt()         {}
func (*SIf) isStmt()            {}
func (*SLocal) isStmt()         {}
func (*SFunction) isStmt()      {}
func (*SClass) isStmt()         {}
func (*SImport) isStmt()        {}
func (*SExportClause) isStmt()  {}
func (*SExportFrom) isStmt()    {}
func (*SExportStar) isStmt()    {}
func (*SExportDefault) isStmt() {}

type Fn struct {
	Name        *LocRef
	Args        []Arg
	Body        FnBody
	IsAsync     bool
	IsGenerator bool
}

type FnBody struct {
	Loc   logger.Loc
	Stmts []Stmt
}

type Arg struct {
	Binding Binding
}

type Class struct {
	Name         *LocRef
	ExtendsOrNil Expr
	Properties   []Property
}

// Property keys that are not computed arrive from the parser as EString, so
// the scan only looks for references in computed keys and in values
type Property struct {
	Key        Expr
	ValueOrNil Expr
}

type Binding struct {
	Loc  logger.Loc
	Data B
}

type B interface {
	isBinding()
}

type BMissing struct{}

type BIdentifier struct {
	Ref ast.Ref
}

type ArrayBinding struct {
	Binding           Binding
	DefaultValueOrNil Expr
}

type BArray struct {
	Items []ArrayBinding
}

type PropertyBinding struct {
	Key               Expr // An EString unless the key is computed
	Value             Binding
	DefaultValueOrNil Expr
	IsSpread          bool
}

type BObject struct {
	Properties []PropertyBinding
}

func (*BMissing) isBinding()    {}
func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}

type Expr struct {
	Loc  logger.Loc
	Data E
}

type E interface {
	isExpr()
}

type EIdentifier struct {
	Ref ast.Ref
}

type EDot struct {
	Target  Expr
	Name    string
	NameLoc logger.Loc
}

type EIndex struct {
	Target Expr
	Index  Expr
}

type ECall struct {
	Target Expr
	Args   []Expr
}

// "import(specifier)"
type EImport struct {
	Expr Expr
}

type EArrow struct {
	Args       []Arg
	Body       FnBody
	PreferExpr bool
}

type EFunction struct {
	Fn Fn
}

type EObject struct {
	Properties []Property
}

type EArray struct {
	Items []Expr
}

type ESpread struct {
	Value Expr
}

type ETemplate struct {
	TagOrNil Expr
	Parts    []Expr
}

type EString struct {
	Value string
}

type ENumber struct {
	Value float64
}

type EBoolean struct {
	Value bool
}

type ENull struct{}

type EUndefined struct{}

type EBinary struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

type EUnary struct {
	Op    OpCode
	Value Expr
}

func (*EIdentifier) isExpr() {}
func (*EDot) isExpr()        {}
func (*EIndex) isExpr()      {}
func (*ECall) isExpr()       {}
func (*EImport) isExpr()     {}
func (*EArrow) isExpr()      {}
func (*EFunction) isExpr()   {}
func (*EObject) isExpr()     {}
func (*EArray) isExpr()      {}
func (*ESpread) isExpr()     {}
func (*ETemplate) isExpr()   {}
func (*EString) isExpr()     {}
func (*ENumber) isExpr()     {}
func (*EBoolean) isExpr()    {}
func (*ENull) isExpr()       {}
func (*EUndefined) isExpr()  {}
func (*EBinary) isExpr()     {}
func (*EUnary) isExpr()      {}

type OpCode uint8

// The ordering of the operators in this block is load-bearing: the
// AssignTarget helpers below classify operators by range comparisons
const (
	// Prefix
	UnOpPos OpCode = iota
	UnOpNeg
	UnOpCpl
	UnOpNot
	UnOpVoid
	UnOpTypeof
	UnOpDelete

	// Prefix update
	UnOpPreDec
	UnOpPreInc

	// Postfix update
	UnOpPostDec
	UnOpPostInc

	// Left-associative
	BinOpAdd
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpRem
	BinOpPow
	BinOpLt
	BinOpLe
	BinOpGt
	BinOpGe
	BinOpLooseEq
	BinOpLooseNe
	BinOpStrictEq
	BinOpStrictNe
	BinOpLogicalOr
	BinOpLogicalAnd
	BinOpNullishCoalescing
	BinOpComma

	// Non-associative
	BinOpAssign
	BinOpAddAssign
	BinOpSubAssign
	BinOpMulAssign
	BinOpDivAssign
	BinOpRemAssign
	BinOpPowAssign
	BinOpLogicalOrAssign
	BinOpLogicalAndAssign
	BinOpNullishCoalescingAssign
)

type AssignTarget uint8

const (
	AssignTargetNone    AssignTarget = iota
	AssignTargetReplace              // "a = b"
	AssignTargetUpdate               // "a += b" or "a++"
)

func (op OpCode) UnaryAssignTarget() AssignTarget {
	if op >= UnOpPreDec && op <= UnOpPostInc {
		return AssignTargetUpdate
	}
	return AssignTargetNone
}

func (op OpCode) BinaryAssignTarget() AssignTarget {
	if op == BinOpAssign {
		return AssignTargetReplace
	}
	if op > BinOpAssign {
		return AssignTargetUpdate
	}
	return AssignTargetNone
}

type ExportsKind uint8

const (
	// The module has no export surface at all
	ExportsNone ExportsKind = iota

	// The module uses ESM import/export syntax or is known to be ESM
	ExportsESM

	// The module writes to "exports" or "module.exports" or is known to be
	// CommonJS
	ExportsCommonJS
)

func (kind ExportsKind) String() string {
	switch kind {
	case ExportsESM:
		return "esm"
	case ExportsCommonJS:
		return "cjs"
	default:
		return "none"
	}
}

// The alias of a named import that binds the whole module namespace object
// instead of a single export. "*" can never collide with a real export name
// because it's not a valid identifier.
const NamespaceAlias = "*"

type NamedImport struct {
	// The name in the exporting module, or NamespaceAlias for the whole
	// namespace object
	Alias    string
	AliasLoc logger.Loc

	// Each record index refers back to the module's append-only import
	// record list
	ImportRecordIndex uint32
}

// An export name bound to a module-local symbol
type LocalExport struct {
	Ref ast.Ref
}

// A symbol reference recorded against a statement, together with the member
// access path it was reached through (e.g. "a.b.c" rooted at a local "a" is
// recorded as the ref of "a" with chain ["b", "c"])
type SymbolAccess struct {
	Ref   ast.Ref
	Chain []string
}

// The unit of dependency bookkeeping: one per top-level statement. Index 0 of
// a module's StmtInfo list is always reserved for the implicit statement that
// declares and constructs the module namespace object; real statements start
// at index 1.
type StmtInfo struct {
	DeclaredSymbols     []ast.Ref
	ReferencedSymbols   []SymbolAccess
	ImportRecordIndices []uint32
}

// Per dynamic-import call, how much of the imported namespace is used. This
// is a closed sum type: a usage is either "all exports possibly used" or
// "only these named exports used".
type DynamicImportUse interface {
	isDynamicImportUse()
}

type UseAllExports struct{}

type UsePartialExports struct {
	// Sorted for deterministic output
	Names []string
}

func (*UseAllExports) isDynamicImportUse()     {}
func (*UsePartialExports) isDynamicImportUse() {}

func PlatformIndependentPathDirBaseExt(path string) (dir string, base string, ext string) {
	for {
		i := strings.LastIndexAny(path, "/\\")

		// Stop if there are no more slashes
		if i < 0 {
			base = path
			break
		}

		// Stop if we found a non-trailing slash
		if i+1 != len(path) {
			dir, base = path[:i], path[i+1:]
			break
		}

		// Ignore trailing slashes
		path = path[:i]
	}

	// Strip off the extension
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		base, ext = base[:dot], base[dot:]
	}

	return
}

// For readability, the names of certain automatically-generated symbols are
// derived from the file name. For example, instead of a synthesized default
// export binding being called something like "default273" it can be called
// something like "react_default" instead. This function generates the part of
// these identifiers that's specific to the file path. It can take both an
// absolute path (OS-specific) and a path in the source code (OS-independent).
//
// Note that these generated names do not at all relate to the correctness of
// the code as far as avoiding symbol name collisions. These names still go
// through the renaming logic that all other symbols go through to avoid name
// collisions.
func GenerateNonUniqueNameFromPath(path string) string {
	// Get the file name without the extension
	dir, base, _ := PlatformIndependentPathDirBaseExt(path)

	// If the name is "index", use the directory name instead. This is because
	// many packages in npm use the file name "index.js" because it triggers
	// node's implicit module resolution rules that allows you to import it by
	// just naming the directory.
	if base == "index" {
		_, dirBase, _ := PlatformIndependentPathDirBaseExt(dir)
		if dirBase != "" {
			base = dirBase
		}
	}

	// Convert it to an ASCII identifier
	bytes := []byte{}
	needsGap := false
	for _, c := range base {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (len(bytes) > 0 && c >= '0' && c <= '9') {
			if needsGap {
				bytes = append(bytes, '_')
				needsGap = false
			}
			bytes = append(bytes, byte(c))
		} else if len(bytes) > 0 {
			needsGap = true
		}
	}

	// Make sure the name isn't empty
	if len(bytes) == 0 {
		return "_"
	}
	return string(bytes)
}
