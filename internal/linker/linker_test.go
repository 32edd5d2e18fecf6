package linker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/graph"
	"github.com/kilnjs/kiln/internal/js_scanner"
	"github.com/kilnjs/kiln/internal/logger"
	"github.com/kilnjs/kiln/internal/test"
)

// Builds module graphs by hand, standing in for the scan and resolve phases.
// Module 0 is always the runtime.
type graphBuilder struct {
	table *graph.ModuleTable
}

func newGraph() *graphBuilder {
	b := &graphBuilder{table: &graph.ModuleTable{}}
	b.addModule("<runtime>")
	return b
}

func (b *graphBuilder) addModule(prettyPath string) ast.ModuleID {
	b.table.Lock()
	defer b.table.Unlock()
	source := test.SourceForTest("")
	source.Index = uint32(len(b.table.NormalModules))
	source.PrettyPath = prettyPath
	return b.table.AddScannedModule(source, js_scanner.ScanResult{})
}

func (b *graphBuilder) addExternal(path string) ast.ModuleID {
	b.table.Lock()
	defer b.table.Unlock()
	return b.table.AddExternalModule(logger.Path{Text: path})
}

func (b *graphBuilder) addImport(from ast.ModuleID, to ast.ModuleID, kind ast.ImportKind) {
	b.table.Lock()
	defer b.table.Unlock()
	module := &b.table.NormalModules[from.Index]
	module.ImportRecords = append(module.ImportRecords, ast.ImportRecord{
		Path:           logger.Path{Text: fmt.Sprintf("./%d", to.Index)},
		ResolvedModule: to,
		Kind:           kind,
	})
}

func (b *graphBuilder) runtime() ast.ModuleID {
	return ast.MakeNormalModuleID(0)
}

func (b *graphBuilder) link(t *testing.T, entries ...ast.ModuleID) (*LinkStage, []logger.Msg) {
	t.Helper()
	log := logger.NewDeferLog()
	stage := NewLinkStage(b.table, entries, b.runtime(), log)
	stage.SortModules()
	return stage, log.Done()
}

func (b *graphBuilder) execOrder(id ast.ModuleID) uint32 {
	switch id.Kind {
	case ast.ModuleNormal:
		return b.table.NormalModules[id.Index].ExecOrder
	case ast.ModuleExternal:
		return b.table.ExternalModules[id.Index].ExecOrder
	}
	panic("Internal error")
}

func TestRuntimeExecutesFirst(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	dep := b.addModule("dep.js")
	b.addImport(entry, dep, ast.ImportStmt)

	stage, msgs := b.link(t, entry)

	require.Empty(t, msgs)
	require.Equal(t, []ast.ModuleID{b.runtime(), dep, entry}, stage.SortedModules)
	test.AssertEqual(t, b.execOrder(b.runtime()), uint32(0))
	test.AssertEqual(t, b.execOrder(dep), uint32(1))
	test.AssertEqual(t, b.execOrder(entry), uint32(2))
}

func TestDependenciesInImportOrder(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	first := b.addModule("first.js")
	second := b.addModule("second.js")
	b.addImport(entry, first, ast.ImportStmt)
	b.addImport(entry, second, ast.ImportRequire)

	stage, _ := b.link(t, entry)

	require.Equal(t, []ast.ModuleID{b.runtime(), first, second, entry}, stage.SortedModules)
}

func TestDiamondVisitedOnce(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	left := b.addModule("left.js")
	right := b.addModule("right.js")
	shared := b.addModule("shared.js")
	b.addImport(entry, left, ast.ImportStmt)
	b.addImport(entry, right, ast.ImportStmt)
	b.addImport(left, shared, ast.ImportStmt)
	b.addImport(right, shared, ast.ImportStmt)

	stage, msgs := b.link(t, entry)

	// Sharing isn't a cycle
	require.Empty(t, msgs)
	require.Equal(t, []ast.ModuleID{b.runtime(), shared, left, right, entry}, stage.SortedModules)
}

func TestMultipleEntriesInGivenOrder(t *testing.T) {
	b := newGraph()
	first := b.addModule("first.js")
	second := b.addModule("second.js")

	stage, _ := b.link(t, first, second)

	require.Equal(t, []ast.ModuleID{b.runtime(), first, second}, stage.SortedModules)
}

func TestExecOrdersAreDense(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	a := b.addModule("a.js")
	c := b.addModule("c.js")
	b.addImport(entry, a, ast.ImportStmt)
	b.addImport(a, c, ast.ImportStmt)

	stage, _ := b.link(t, entry)

	for i, id := range stage.SortedModules {
		test.AssertEqual(t, b.execOrder(id), uint32(i))
	}
}

func TestCycleReportedOnce(t *testing.T) {
	b := newGraph()
	a := b.addModule("a.js")
	c := b.addModule("b.js")
	d := b.addModule("c.js")
	b.addImport(a, c, ast.ImportStmt)
	b.addImport(c, d, ast.ImportStmt)
	b.addImport(d, a, ast.ImportStmt)

	stage, msgs := b.link(t, a)

	require.Len(t, msgs, 1)
	test.AssertEqual(t, msgs[0].Kind, logger.Warning)
	test.AssertEqual(t, msgs[0].Data.Text, "Circular dependency: a.js -> b.js -> c.js -> a.js")

	// The cycle is broken where it closed; every module still runs exactly once
	require.Equal(t, []ast.ModuleID{b.runtime(), d, c, a}, stage.SortedModules)
	for i, id := range stage.SortedModules {
		test.AssertEqual(t, b.execOrder(id), uint32(i))
	}
}

func TestSameCycleDeduplicated(t *testing.T) {
	// Two import statements closing the same cycle produce a single warning
	b := newGraph()
	a := b.addModule("a.js")
	c := b.addModule("b.js")
	b.addImport(a, c, ast.ImportStmt)
	b.addImport(c, a, ast.ImportStmt)
	b.addImport(c, a, ast.ImportStmt)

	_, msgs := b.link(t, a)

	require.Len(t, msgs, 1)
	test.AssertEqual(t, msgs[0].Data.Text, "Circular dependency: a.js -> b.js -> a.js")
}

func TestSelfImportCycle(t *testing.T) {
	b := newGraph()
	a := b.addModule("a.js")
	b.addImport(a, a, ast.ImportStmt)

	stage, msgs := b.link(t, a)

	require.Len(t, msgs, 1)
	test.AssertEqual(t, msgs[0].Data.Text, "Circular dependency: a.js -> a.js")
	require.Equal(t, []ast.ModuleID{b.runtime(), a}, stage.SortedModules)
}

func TestDynamicImportsDontConstrainOrder(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	lazy := b.addModule("lazy.js")
	b.addImport(entry, lazy, ast.ImportDynamic)

	stage, msgs := b.link(t, entry, lazy)

	// The dynamic target executes in entry order, not before its importer
	require.Empty(t, msgs)
	require.Equal(t, []ast.ModuleID{b.runtime(), entry, lazy}, stage.SortedModules)
}

func TestExternalModulesAreScheduled(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	react := b.addExternal("react")
	b.addImport(entry, react, ast.ImportStmt)

	stage, msgs := b.link(t, entry)

	require.Empty(t, msgs)
	require.Equal(t, []ast.ModuleID{b.runtime(), react, entry}, stage.SortedModules)
	test.AssertEqual(t, b.execOrder(react), uint32(1))
}

func TestDeterministicOrder(t *testing.T) {
	build := func() []ast.ModuleID {
		b := newGraph()
		entry := b.addModule("entry.js")
		modules := make([]ast.ModuleID, 10)
		for i := range modules {
			modules[i] = b.addModule(fmt.Sprintf("m%d.js", i))
			b.addImport(entry, modules[i], ast.ImportStmt)
		}
		for i := 1; i < len(modules); i++ {
			b.addImport(modules[i], modules[i-1], ast.ImportStmt)
		}
		stage, _ := b.link(t, entry)
		return stage.SortedModules
	}

	require.Equal(t, build(), build())
}

func TestUnresolvedStaticImportPanics(t *testing.T) {
	b := newGraph()
	entry := b.addModule("entry.js")
	b.table.Lock()
	module := &b.table.NormalModules[entry.Index]
	module.ImportRecords = append(module.ImportRecords, ast.ImportRecord{
		Path: logger.Path{Text: "./missing"},
		Kind: ast.ImportStmt,
	})
	b.table.Unlock()

	defer func() {
		err := recover()
		if err == nil {
			t.Fatal("Expected a panic")
		}
		if !strings.Contains(fmt.Sprint(err), "Unresolved static import") {
			t.Fatalf("Unexpected panic: %v", err)
		}
	}()
	b.link(t, entry)
}
