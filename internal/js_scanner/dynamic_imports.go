package js_scanner

// Dynamic-import usage analysis. A bare "import('path')" makes every export
// of the target possibly used, but the common "import('path').then(m => ...)"
// shape often reveals exactly which exports matter, which lets tree shaking
// keep less of the target alive.

import (
	"sort"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/js_ast"
	"github.com/kilnjs/kiln/internal/logger"
)

// Called when the walk encounters "import(...).then(callback)". The outer
// call is visited before the "import()" expression inside it, so the usage is
// keyed by the import expression's location and matched up with its import
// record after the walk.
func (s *Scanner) collectDynamicImportUse(importLoc logger.Loc, callback js_ast.Expr) {
	s.dynamicImportUsage[importLoc] = s.dynamicImportUseForCallback(callback)
}

// Re-key the collected usage from source locations to import record ids. An
// entry with no matching record means the "then" pattern matched but the
// specifier wasn't a string literal, so no record was created; those are
// dropped.
func (s *Scanner) normalizeDynamicImportUsage() {
	for loc, use := range s.dynamicImportUsage {
		if recordIndex, ok := s.result.ImportRecordsByLoc[loc]; ok {
			s.result.DynamicImportUsage[recordIndex] = use
		}
	}
}

func (s *Scanner) dynamicImportUseForCallback(callback js_ast.Expr) js_ast.DynamicImportUse {
	var args []js_ast.Arg
	var body js_ast.FnBody

	switch fn := callback.Data.(type) {
	case *js_ast.EArrow:
		args, body = fn.Args, fn.Body
	case *js_ast.EFunction:
		args, body = fn.Fn.Args, fn.Fn.Body
	default:
		// The callback is a reference to some function defined elsewhere,
		// which could do anything with the namespace
		return &js_ast.UseAllExports{}
	}

	// A callback that ignores its argument uses nothing
	if len(args) == 0 {
		return &js_ast.UsePartialExports{}
	}

	switch b := args[0].Binding.Data.(type) {
	case *js_ast.BMissing:
		return &js_ast.UsePartialExports{}

	case *js_ast.BIdentifier:
		names, sawBareUse := s.namespaceParamUses(b.Ref, body.Stmts)
		if sawBareUse {
			return &js_ast.UseAllExports{}
		}
		return &js_ast.UsePartialExports{Names: sortedUniqueNames(names)}

	case *js_ast.BObject:
		// "then(({ a, b }) => ...)" names the used exports directly
		var names []string
		for _, property := range b.Properties {
			if property.IsSpread {
				// "...rest" captures the whole namespace
				return &js_ast.UseAllExports{}
			}
			str, ok := property.Key.Data.(*js_ast.EString)
			if !ok {
				return &js_ast.UseAllExports{}
			}
			names = append(names, str.Value)
		}
		return &js_ast.UsePartialExports{Names: sortedUniqueNames(names)}

	default:
		return &js_ast.UseAllExports{}
	}
}

// Walk the callback body looking at every use of the namespace parameter. A
// use as the target of a plain property access contributes that property
// name; any other use (passing it along, indexing it, spreading it) means
// the whole namespace escapes.
func (s *Scanner) namespaceParamUses(ref ast.Ref, stmts []js_ast.Stmt) (names []string, sawBareUse bool) {
	w := &namespaceUseWalker{ref: ref}
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
	return w.names, w.sawBareUse
}

type namespaceUseWalker struct {
	ref        ast.Ref
	names      []string
	sawBareUse bool
}

func (w *namespaceUseWalker) walkStmt(stmt js_ast.Stmt) {
	switch d := stmt.Data.(type) {
	case *js_ast.SEmpty, *js_ast.SComment, *js_ast.SDirective:

	case *js_ast.SExpr:
		w.walkExpr(d.Value)

	case *js_ast.SBlock:
		for _, nested := range d.Stmts {
			w.walkStmt(nested)
		}

	case *js_ast.SIf:
		w.walkExpr(d.Test)
		w.walkStmt(d.Yes)
		if d.NoOrNil != nil {
			w.walkStmt(*d.NoOrNil)
		}

	case *js_ast.SLocal:
		for _, decl := range d.Decls {
			w.walkBinding(decl.Binding)
			w.walkExpr(decl.ValueOrNil)
		}

	case *js_ast.SFunction:
		w.walkFn(d.Fn)

	case *js_ast.SClass:
		w.walkClass(d.Class)

	default:
		panic("Internal error")
	}
}

func (w *namespaceUseWalker) walkBinding(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BMissing, *js_ast.BIdentifier:

	case *js_ast.BArray:
		for _, item := range b.Items {
			w.walkBinding(item.Binding)
			w.walkExpr(item.DefaultValueOrNil)
		}

	case *js_ast.BObject:
		for _, property := range b.Properties {
			if _, ok := property.Key.Data.(*js_ast.EString); !ok {
				w.walkExpr(property.Key)
			}
			w.walkBinding(property.Value)
			w.walkExpr(property.DefaultValueOrNil)
		}

	default:
		panic("Internal error")
	}
}

func (w *namespaceUseWalker) walkFn(fn js_ast.Fn) {
	for _, arg := range fn.Args {
		w.walkBinding(arg.Binding)
	}
	for _, stmt := range fn.Body.Stmts {
		w.walkStmt(stmt)
	}
}

func (w *namespaceUseWalker) walkClass(class js_ast.Class) {
	w.walkExpr(class.ExtendsOrNil)
	for _, property := range class.Properties {
		if _, ok := property.Key.Data.(*js_ast.EString); !ok {
			w.walkExpr(property.Key)
		}
		w.walkExpr(property.ValueOrNil)
	}
}

func (w *namespaceUseWalker) walkExpr(expr js_ast.Expr) {
	if expr.Data == nil {
		return
	}

	switch d := expr.Data.(type) {
	case *js_ast.EString, *js_ast.ENumber, *js_ast.EBoolean, *js_ast.ENull, *js_ast.EUndefined:

	case *js_ast.EIdentifier:
		if d.Ref == w.ref {
			w.sawBareUse = true
		}

	case *js_ast.EDot:
		// "ns.name" uses exactly one export; only descend further if the
		// target isn't the parameter itself
		if id, ok := d.Target.Data.(*js_ast.EIdentifier); ok && id.Ref == w.ref {
			w.names = append(w.names, d.Name)
			return
		}
		w.walkExpr(d.Target)

	case *js_ast.EIndex:
		w.walkExpr(d.Target)
		w.walkExpr(d.Index)

	case *js_ast.ECall:
		w.walkExpr(d.Target)
		for _, arg := range d.Args {
			w.walkExpr(arg)
		}

	case *js_ast.EImport:
		w.walkExpr(d.Expr)

	case *js_ast.EArrow:
		for _, arg := range d.Args {
			w.walkBinding(arg.Binding)
		}
		for _, stmt := range d.Body.Stmts {
			w.walkStmt(stmt)
		}

	case *js_ast.EFunction:
		w.walkFn(d.Fn)

	case *js_ast.EObject:
		for _, property := range d.Properties {
			if _, ok := property.Key.Data.(*js_ast.EString); !ok {
				w.walkExpr(property.Key)
			}
			w.walkExpr(property.ValueOrNil)
		}

	case *js_ast.EArray:
		for _, item := range d.Items {
			w.walkExpr(item)
		}

	case *js_ast.ESpread:
		w.walkExpr(d.Value)

	case *js_ast.ETemplate:
		w.walkExpr(d.TagOrNil)
		for _, part := range d.Parts {
			w.walkExpr(part)
		}

	case *js_ast.EBinary:
		w.walkExpr(d.Left)
		w.walkExpr(d.Right)

	case *js_ast.EUnary:
		w.walkExpr(d.Value)

	default:
		panic("Internal error")
	}
}

func sortedUniqueNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	unique := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	sort.Strings(unique)
	return unique
}
