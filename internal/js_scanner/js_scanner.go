package js_scanner

// The scan pass walks one module's syntax tree and extracts every
// statement-level dependency fact the linker needs: declared and referenced
// symbols per statement, import records, named imports and exports, the
// export kind of the module, and dynamic-import usage. It runs independently
// per module with no cross-module state, so many modules can be scanned
// concurrently.
//
// The scan never fails the build. Anomalies in well-formed input become
// warning messages attached to the result; a syntax tree shape the scan does
// not recognize can only come from a buggy parser and panics.

import (
	"fmt"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/config"
	"github.com/kilnjs/kiln/internal/js_ast"
	"github.com/kilnjs/kiln/internal/logger"
)

// The self-contained fact sheet for one scanned module. It's owned by the
// module it describes until graph assembly merges it into the module table;
// all cross-module links are indirect through import record indices.
type ScanResult struct {
	// Maps the local binding to the name it was imported as. The alias
	// js_ast.NamespaceAlias means the whole namespace object was imported.
	NamedImports map[ast.Ref]js_ast.NamedImport

	// Maps each export name to the local symbol it refers to. A later export
	// of the same name silently overwrites the record.
	NamedExports map[string]js_ast.LocalExport

	// Index 0 is the implicit namespace-construction pseudo-statement; real
	// statements start at index 1
	StmtInfos []js_ast.StmtInfo

	// Append-only; indexed by the record ids used everywhere else
	ImportRecords []ast.ImportRecord

	// Import record ids of "export * from" statements (re-export-all)
	StarExports []uint32

	// The binding used for "export default <expr>" when the default export
	// has no name of its own
	DefaultExportRef ast.Ref

	// The module namespace object binding, representing the collection of all
	// of this module's exports as one value
	NamespaceRef ast.Ref

	// Maps the location of each import statement, "require()" call, and
	// "import()" expression to its import record id
	ImportRecordsByLoc map[logger.Loc]uint32

	ExportsKind js_ast.ExportsKind

	// Keyed by import record id; only dynamic records appear here
	DynamicImportUsage map[uint32]js_ast.DynamicImportUse

	// Non-fatal diagnostics collected during the scan
	Msgs []logger.Msg
}

type Scanner struct {
	source  logger.Source
	tree    *js_ast.AST
	options config.ScanOptions

	// Equal to source.Index; the outer index of every symbol this module owns
	moduleIndex uint32

	result ScanResult

	// The bookkeeping entry for the top-level statement currently being
	// scanned. Facts found anywhere inside the statement (including nested
	// function bodies) are attributed to it.
	stmt *js_ast.StmtInfo

	sawESMExportKeyword bool
	sawESMImportKeyword bool

	// CommonJS export interop: an unbound reference to "exports" or "module"
	usedExportsRef bool
	usedModuleRef  bool

	// Dynamic-import usage collected during the walk, keyed by the location
	// of the "import(...)" expression. Re-keyed by import record id once the
	// walk is complete; see dynamic_imports.go.
	dynamicImportUsage map[logger.Loc]js_ast.DynamicImportUse
}

func NewScanner(source logger.Source, tree *js_ast.AST, options config.ScanOptions) *Scanner {
	s := &Scanner{
		source:             source,
		tree:               tree,
		options:            options,
		moduleIndex:        source.Index,
		dynamicImportUsage: make(map[logger.Loc]js_ast.DynamicImportUse),
	}

	// This is used for converting "export default foo;" into something like
	// "var util_default = foo;" when bundling
	s.result.DefaultExportRef = s.createSymbol(js_ast.SymbolOther, source.IdentifierName+"_default")

	// The module namespace object, for namespace and star imports
	s.result.NamespaceRef = s.createSymbol(js_ast.SymbolOther, source.IdentifierName+"_ns")

	s.result.NamedImports = make(map[ast.Ref]js_ast.NamedImport)
	s.result.NamedExports = make(map[string]js_ast.LocalExport)
	s.result.ImportRecordsByLoc = make(map[logger.Loc]uint32)
	s.result.DynamicImportUsage = make(map[uint32]js_ast.DynamicImportUse)

	// Statement index 0 is reserved for the implicit statement that declares
	// and constructs the module namespace object
	s.result.StmtInfos = []js_ast.StmtInfo{{DeclaredSymbols: []ast.Ref{s.result.NamespaceRef}}}

	return s
}

// Scan consumes the scanner. The returned fact sheet shares no mutable state
// with any other module's result.
func (s *Scanner) Scan() ScanResult {
	for _, stmt := range s.tree.Stmts {
		info := js_ast.StmtInfo{}
		s.stmt = &info
		s.scanStmt(stmt)
		s.result.StmtInfos = append(s.result.StmtInfos, info)
	}
	s.stmt = nil

	s.result.ExportsKind = s.exportsKind()
	s.normalizeDynamicImportUsage()
	return s.result
}

// The precedence here is load-bearing: explicit export syntax always wins
// over format hints, and format hints win over the weaker signal of having
// only imports.
func (s *Scanner) exportsKind() js_ast.ExportsKind {
	if s.sawESMExportKeyword {
		return js_ast.ExportsESM
	}
	if s.usedExportsRef || s.usedModuleRef {
		return js_ast.ExportsCommonJS
	}
	switch s.options.Format {
	case config.FormatCommonJS, config.FormatCommonJSPackageJSON:
		return js_ast.ExportsCommonJS
	case config.FormatESM, config.FormatESMPackageJSON:
		return js_ast.ExportsESM
	default:
		if s.sawESMImportKeyword {
			return js_ast.ExportsESM
		}
		return js_ast.ExportsNone
	}
}


func (s *Scanner) symbol(ref ast.Ref) *js_ast.Symbol {
	if ref.OuterIndex != s.moduleIndex {
		panic("Internal error")
	}
	return &s.tree.Symbols[ref.InnerIndex]
}

func (s *Scanner) createSymbol(kind js_ast.SymbolKind, name string) ast.Ref {
	ref := ast.Ref{OuterIndex: s.moduleIndex, InnerIndex: uint32(len(s.tree.Symbols))}
	s.tree.Symbols = append(s.tree.Symbols, js_ast.Symbol{Kind: kind, OriginalName: name})
	return ref
}

func (s *Scanner) declareSymbol(ref ast.Ref) {
	s.stmt.DeclaredSymbols = append(s.stmt.DeclaredSymbols, ref)
}

func (s *Scanner) addSymbolReference(ref ast.Ref, chain []string) {
	s.stmt.ReferencedSymbols = append(s.stmt.ReferencedSymbols, js_ast.SymbolAccess{Ref: ref, Chain: chain})
}

func (s *Scanner) addImportRecord(kind ast.ImportKind, path js_ast.ImportPath) uint32 {
	// If the target of "import ... from 'foo'" is finally a CommonJS module,
	// the import statement becomes "var import_foo = __toESM(require_foo())",
	// so a symbol for "import_foo" is created here. Whether it's actually
	// used is determined in the linking stage.
	namespaceRef := s.createSymbol(js_ast.SymbolOther, "import_"+js_ast.GenerateNonUniqueNameFromPath(path.Text))

	index := uint32(len(s.result.ImportRecords))
	s.result.ImportRecords = append(s.result.ImportRecords, ast.ImportRecord{
		Path:         logger.Path{Text: path.Text},
		Range:        path.Range,
		NamespaceRef: namespaceRef,
		Kind:         kind,
	})
	s.stmt.ImportRecordIndices = append(s.stmt.ImportRecordIndices, index)
	return index
}

func (s *Scanner) addNamedImport(local ast.Ref, alias string, recordIndex uint32, aliasLoc logger.Loc) {
	s.result.NamedImports[local] = js_ast.NamedImport{
		Alias:             alias,
		AliasLoc:          aliasLoc,
		ImportRecordIndex: recordIndex,
	}
}

func (s *Scanner) addLocalExport(name string, ref ast.Ref) {
	s.result.NamedExports[name] = js_ast.LocalExport{Ref: ref}
}

func (s *Scanner) scanStmt(stmt js_ast.Stmt) {
	switch d := stmt.Data.(type) {
	case *js_ast.SEmpty, *js_ast.SComment, *js_ast.SDirective:

	case *js_ast.SExpr:
		s.visitExpr(d.Value)

	case *js_ast.SBlock:
		for _, nested := range d.Stmts {
			s.visitStmt(nested)
		}

	case *js_ast.SIf:
		s.visitExpr(d.Test)
		s.visitStmt(d.Yes)
		if d.NoOrNil != nil {
			s.visitStmt(*d.NoOrNil)
		}

	case *js_ast.SLocal:
		if d.IsExport {
			s.sawESMExportKeyword = true
		}
		for _, decl := range d.Decls {
			s.scanTopLevelBinding(decl.Binding, d.IsExport)
			s.visitExpr(decl.ValueOrNil)
		}

	case *js_ast.SFunction:
		if d.IsExport {
			s.sawESMExportKeyword = true
		}
		if d.Fn.Name == nil {
			panic("Internal error")
		}
		s.declareSymbol(d.Fn.Name.Ref)
		if d.IsExport {
			s.addLocalExport(s.symbol(d.Fn.Name.Ref).OriginalName, d.Fn.Name.Ref)
		}
		s.visitFn(d.Fn)

	case *js_ast.SClass:
		if d.IsExport {
			s.sawESMExportKeyword = true
		}
		if d.Class.Name == nil {
			panic("Internal error")
		}
		s.declareSymbol(d.Class.Name.Ref)
		if d.IsExport {
			s.addLocalExport(s.symbol(d.Class.Name.Ref).OriginalName, d.Class.Name.Ref)
		}
		s.visitClass(d.Class)

	case *js_ast.SImport:
		s.sawESMImportKeyword = true
		s.scanImport(stmt.Loc, d)

	case *js_ast.SExportClause:
		s.sawESMExportKeyword = true
		s.scanExportClause(d)

	case *js_ast.SExportFrom:
		s.sawESMExportKeyword = true
		s.scanExportFrom(stmt.Loc, d)

	case *js_ast.SExportStar:
		s.sawESMExportKeyword = true
		s.scanExportStar(stmt.Loc, d)

	case *js_ast.SExportDefault:
		s.sawESMExportKeyword = true
		s.scanExportDefault(d)

	default:
		panic(fmt.Sprintf("Unexpected statement of type %T", stmt.Data))
	}
}

// Top-level declarations become module-scope symbols; nested ones (inside
// function bodies) do not, so this is only called from scanStmt
func (s *Scanner) scanTopLevelBinding(binding js_ast.Binding, isExport bool) {
	switch b := binding.Data.(type) {
	case *js_ast.BMissing:

	case *js_ast.BIdentifier:
		s.declareSymbol(b.Ref)
		if isExport {
			s.addLocalExport(s.symbol(b.Ref).OriginalName, b.Ref)
		}

	case *js_ast.BArray:
		for _, item := range b.Items {
			s.scanTopLevelBinding(item.Binding, isExport)
			s.visitExpr(item.DefaultValueOrNil)
		}

	case *js_ast.BObject:
		for _, property := range b.Properties {
			if _, ok := property.Key.Data.(*js_ast.EString); !ok {
				s.visitExpr(property.Key)
			}
			s.scanTopLevelBinding(property.Value, isExport)
			s.visitExpr(property.DefaultValueOrNil)
		}

	default:
		panic("Internal error")
	}
}

func (s *Scanner) scanImport(loc logger.Loc, d *js_ast.SImport) {
	recordIndex := s.addImportRecord(ast.ImportStmt, d.Path)
	s.result.ImportRecordsByLoc[loc] = recordIndex
	record := &s.result.ImportRecords[recordIndex]

	// "import 'path'" and "import {} from 'path'"
	if d.DefaultName == nil && d.StarNameLoc == nil && (d.Items == nil || len(*d.Items) == 0) {
		record.Flags |= ast.IsPlainImport
		return
	}

	if d.DefaultName != nil {
		s.declareSymbol(d.DefaultName.Ref)
		s.addNamedImport(d.DefaultName.Ref, "default", recordIndex, d.DefaultName.Loc)
		record.Flags |= ast.ContainsDefaultAlias
	}

	if d.Items != nil {
		for _, item := range *d.Items {
			s.declareSymbol(item.Name.Ref)
			s.addNamedImport(item.Name.Ref, item.Alias, recordIndex, item.AliasLoc)
			if item.Alias == "default" {
				record.Flags |= ast.ContainsDefaultAlias
			}
		}
	}

	if d.StarNameLoc != nil {
		s.declareSymbol(d.NamespaceRef)
		s.addNamedImport(d.NamespaceRef, js_ast.NamespaceAlias, recordIndex, *d.StarNameLoc)
		record.Flags |= ast.ContainsImportStar
	}
}

func (s *Scanner) scanExportClause(d *js_ast.SExportClause) {
	for _, item := range d.Items {
		member, ok := s.tree.ModuleScope.Members[item.OriginalName]
		if !ok {
			// Reference resolution happened upstream, so the binding must exist
			panic("Internal error")
		}
		s.addSymbolReference(member.Ref, nil)
		s.addLocalExport(item.Alias, member.Ref)
	}
}

// Record "export { [imported] as [alias] } from 'path'" statements.
//
// Note that we will pretend
//
//	export { [imported] as [alias] } from 'path'
//
// to be
//
//	import { [imported] as [generated] } from 'path'
//	export { [generated] as [alias] }
//
// Reasons are:
//
//   - No extra logic for dealing with the re-export concept downstream.
//   - CommonJS compatibility. We need a [generated] binding to hold the value
//     re-exported from a CommonJS module, since "export { foo } from 'cjs'"
//     must become "var import_cjs = __toESM(require_cjs()); var [generated] =
//     import_cjs.foo; export { [generated] as foo }" at link time.
func (s *Scanner) scanExportFrom(loc logger.Loc, d *js_ast.SExportFrom) {
	recordIndex := s.addImportRecord(ast.ImportStmt, d.Path)
	s.result.ImportRecordsByLoc[loc] = recordIndex

	for _, item := range d.Items {
		// Re-exporting as "default" would otherwise name the generated
		// binding "default", which isn't a valid identifier
		name := item.Alias
		if name == "default" {
			name = js_ast.GenerateNonUniqueNameFromPath(s.result.ImportRecords[recordIndex].Path.Text) + "_default"
		}

		generatedRef := s.createSymbol(js_ast.SymbolImport, name)
		s.declareSymbol(generatedRef)
		s.addNamedImport(generatedRef, item.OriginalName, recordIndex, item.Name.Loc)
		if item.OriginalName == "default" {
			s.result.ImportRecords[recordIndex].Flags |= ast.ContainsDefaultAlias
		}
		s.addLocalExport(item.Alias, generatedRef)
	}

	// "export {} from 'path'"
	if len(d.Items) == 0 {
		s.result.ImportRecords[recordIndex].Flags |= ast.IsPlainImport
	}
}

func (s *Scanner) scanExportStar(loc logger.Loc, d *js_ast.SExportStar) {
	recordIndex := s.addImportRecord(ast.ImportStmt, d.Path)
	s.result.ImportRecordsByLoc[loc] = recordIndex

	if d.Alias != nil {
		// "export * as ns from 'path'" is treated as "import * as [generated]
		// from 'path'; export { [generated] as ns }", unifying star re-exports
		// with ordinary export handling
		generatedRef := s.createSymbol(js_ast.SymbolImport, d.Alias.Name)
		s.declareSymbol(generatedRef)
		s.addNamedImport(generatedRef, js_ast.NamespaceAlias, recordIndex, d.Alias.Loc)
		s.result.ImportRecords[recordIndex].Flags |= ast.ContainsImportStar
		s.addLocalExport(d.Alias.Name, generatedRef)
	} else {
		// "export * from 'path'"
		s.result.StarExports = append(s.result.StarExports, recordIndex)
	}
}

func (s *Scanner) scanExportDefault(d *js_ast.SExportDefault) {
	binding := ast.InvalidRef

	if st := d.Value.Stmt; st != nil {
		switch fn := st.Data.(type) {
		case *js_ast.SFunction:
			// A named default function's own symbol becomes the default binding
			if fn.Fn.Name != nil {
				binding = fn.Fn.Name.Ref
			}
			s.visitFn(fn.Fn)
		case *js_ast.SClass:
			if fn.Class.Name != nil {
				binding = fn.Class.Name.Ref
			}
			s.visitClass(fn.Class)
		default:
			panic(fmt.Sprintf("Unexpected default export of type %T", st.Data))
		}
	} else if e := d.Value.Expr; e != nil {
		s.visitExpr(*e)
	}

	if binding == ast.InvalidRef {
		binding = s.result.DefaultExportRef
	}

	s.declareSymbol(binding)
	s.addLocalExport("default", binding)
}

// Statements nested inside function bodies only contribute references and
// import records, never module-scope declarations or exports
func (s *Scanner) visitStmt(stmt js_ast.Stmt) {
	switch d := stmt.Data.(type) {
	case *js_ast.SEmpty, *js_ast.SComment, *js_ast.SDirective:

	case *js_ast.SExpr:
		s.visitExpr(d.Value)

	case *js_ast.SBlock:
		for _, nested := range d.Stmts {
			s.visitStmt(nested)
		}

	case *js_ast.SIf:
		s.visitExpr(d.Test)
		s.visitStmt(d.Yes)
		if d.NoOrNil != nil {
			s.visitStmt(*d.NoOrNil)
		}

	case *js_ast.SLocal:
		for _, decl := range d.Decls {
			s.visitBindingValues(decl.Binding)
			s.visitExpr(decl.ValueOrNil)
		}

	case *js_ast.SFunction:
		s.visitFn(d.Fn)

	case *js_ast.SClass:
		s.visitClass(d.Class)

	default:
		// Import and export statements cannot nest
		panic(fmt.Sprintf("Unexpected statement of type %T", stmt.Data))
	}
}

// Visit the default values and computed keys of a binding pattern without
// declaring anything
func (s *Scanner) visitBindingValues(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BMissing, *js_ast.BIdentifier:

	case *js_ast.BArray:
		for _, item := range b.Items {
			s.visitBindingValues(item.Binding)
			s.visitExpr(item.DefaultValueOrNil)
		}

	case *js_ast.BObject:
		for _, property := range b.Properties {
			if _, ok := property.Key.Data.(*js_ast.EString); !ok {
				s.visitExpr(property.Key)
			}
			s.visitBindingValues(property.Value)
			s.visitExpr(property.DefaultValueOrNil)
		}

	default:
		panic("Internal error")
	}
}

func (s *Scanner) visitFn(fn js_ast.Fn) {
	for _, arg := range fn.Args {
		s.visitBindingValues(arg.Binding)
	}
	for _, stmt := range fn.Body.Stmts {
		s.visitStmt(stmt)
	}
}

func (s *Scanner) visitClass(class js_ast.Class) {
	s.visitExpr(class.ExtendsOrNil)
	for _, property := range class.Properties {
		if _, ok := property.Key.Data.(*js_ast.EString); !ok {
			s.visitExpr(property.Key)
		}
		s.visitExpr(property.ValueOrNil)
	}
}

func (s *Scanner) visitExpr(expr js_ast.Expr) {
	if expr.Data == nil {
		return
	}

	switch d := expr.Data.(type) {
	case *js_ast.EString, *js_ast.ENumber, *js_ast.EBoolean, *js_ast.ENull, *js_ast.EUndefined:

	case *js_ast.EIdentifier:
		s.visitIdentifierReference(d.Ref, nil)

	case *js_ast.EDot:
		s.visitMemberChain(expr)

	case *js_ast.EIndex:
		s.visitExpr(d.Target)
		s.visitExpr(d.Index)

	case *js_ast.ECall:
		s.visitCall(expr.Loc, d)

	case *js_ast.EImport:
		s.visitImportExpr(expr.Loc, d)

	case *js_ast.EArrow:
		for _, arg := range d.Args {
			s.visitBindingValues(arg.Binding)
		}
		for _, stmt := range d.Body.Stmts {
			s.visitStmt(stmt)
		}

	case *js_ast.EFunction:
		s.visitFn(d.Fn)

	case *js_ast.EObject:
		for _, property := range d.Properties {
			if _, ok := property.Key.Data.(*js_ast.EString); !ok {
				s.visitExpr(property.Key)
			}
			s.visitExpr(property.ValueOrNil)
		}

	case *js_ast.EArray:
		for _, item := range d.Items {
			s.visitExpr(item)
		}

	case *js_ast.ESpread:
		s.visitExpr(d.Value)

	case *js_ast.ETemplate:
		s.visitExpr(d.TagOrNil)
		for _, part := range d.Parts {
			s.visitExpr(part)
		}

	case *js_ast.EBinary:
		if d.Op.BinaryAssignTarget() != js_ast.AssignTargetNone {
			s.maybeWarnAboutConstWrite(d.Left)
		}
		s.visitExpr(d.Left)
		s.visitExpr(d.Right)

	case *js_ast.EUnary:
		if d.Op.UnaryAssignTarget() != js_ast.AssignTargetNone {
			s.maybeWarnAboutConstWrite(d.Value)
		}
		s.visitExpr(d.Value)

	default:
		panic(fmt.Sprintf("Unexpected expression of type %T", expr.Data))
	}
}

// Record a reference to a locally-resolved symbol. References to unbound
// (global) symbols are not recorded, but unbound uses of "exports" and
// "module" are remembered as CommonJS export interop.
func (s *Scanner) visitIdentifierReference(ref ast.Ref, chain []string) {
	symbol := s.symbol(ref)
	if symbol.Kind == js_ast.SymbolUnbound {
		switch symbol.OriginalName {
		case "exports":
			s.usedExportsRef = true
		case "module":
			s.usedModuleRef = true
		}
		return
	}
	s.addSymbolReference(ref, chain)
}

// A property access chain like "a.b.c" rooted at a local symbol is recorded
// as one reference to the root with the access-path suffix attached
func (s *Scanner) visitMemberChain(expr js_ast.Expr) {
	var chain []string
	current := expr
	for {
		dot, ok := current.Data.(*js_ast.EDot)
		if !ok {
			break
		}
		chain = append([]string{dot.Name}, chain...)
		current = dot.Target
	}

	if id, ok := current.Data.(*js_ast.EIdentifier); ok {
		s.visitIdentifierReference(id.Ref, chain)
		return
	}

	// The chain is rooted at something that isn't a plain identifier, e.g.
	// "f().x"; only the root expression can contribute references
	s.visitExpr(current)
}

func (s *Scanner) visitCall(loc logger.Loc, d *js_ast.ECall) {
	// A "require()" call with a string argument is an implicit static import
	if id, ok := d.Target.Data.(*js_ast.EIdentifier); ok && len(d.Args) == 1 {
		symbol := s.symbol(id.Ref)
		if symbol.Kind == js_ast.SymbolUnbound && symbol.OriginalName == "require" {
			if str, ok := d.Args[0].Data.(*js_ast.EString); ok {
				recordIndex := s.addImportRecord(ast.ImportRequire, js_ast.ImportPath{
					Text:  str.Value,
					Range: s.source.RangeOfString(d.Args[0].Loc),
				})
				s.result.ImportRecordsByLoc[loc] = recordIndex
				return
			}
		}
	}

	// "import('path').then(...)" reveals how much of the imported namespace
	// is used. The call expression is visited before the import expression it
	// wraps, so this is collected here and re-keyed later.
	if dot, ok := d.Target.Data.(*js_ast.EDot); ok && dot.Name == "then" && len(d.Args) >= 1 {
		if _, ok := dot.Target.Data.(*js_ast.EImport); ok {
			s.collectDynamicImportUse(dot.Target.Loc, d.Args[0])
		}
	}

	s.visitExpr(d.Target)
	for _, arg := range d.Args {
		s.visitExpr(arg)
	}
}

func (s *Scanner) visitImportExpr(loc logger.Loc, d *js_ast.EImport) {
	str, ok := d.Expr.Data.(*js_ast.EString)
	if !ok {
		// "import(someExpression)" can't be resolved at build time
		s.visitExpr(d.Expr)
		return
	}

	recordIndex := s.addImportRecord(ast.ImportDynamic, js_ast.ImportPath{
		Text:  str.Value,
		Range: s.source.RangeOfString(d.Expr.Loc),
	})
	s.result.ImportRecordsByLoc[loc] = recordIndex

	// If no wrapping call narrowed the usage down, all exports are
	// considered possibly used
	if _, ok := s.dynamicImportUsage[loc]; !ok {
		s.dynamicImportUsage[loc] = &js_ast.UseAllExports{}
	}
}

func (s *Scanner) maybeWarnAboutConstWrite(target js_ast.Expr) {
	id, ok := target.Data.(*js_ast.EIdentifier)
	if !ok {
		return
	}
	symbol := s.symbol(id.Ref)
	if symbol.Kind != js_ast.SymbolConst {
		return
	}

	writeRange := logger.Range{Loc: target.Loc, Len: int32(len(symbol.OriginalName))}
	declRange := logger.Range{Loc: symbol.Loc, Len: int32(len(symbol.OriginalName))}

	s.result.Msgs = append(s.result.Msgs, logger.Msg{
		Kind: logger.Warning,
		Data: logger.RangeData(&s.source, writeRange,
			fmt.Sprintf("Cannot assign to %q because it is a constant", symbol.OriginalName)),
		Notes: []logger.MsgData{logger.RangeData(&s.source, declRange,
			fmt.Sprintf("The symbol %q was declared a constant here:", symbol.OriginalName))},
	})
}
