package graph

import (
	"testing"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/js_scanner"
	"github.com/kilnjs/kiln/internal/logger"
	"github.com/kilnjs/kiln/internal/test"
)

func TestAddScannedModule(t *testing.T) {
	table := &ModuleTable{}
	table.Lock()
	defer table.Unlock()

	source := test.SourceForTest("")
	id := table.AddScannedModule(source, js_scanner.ScanResult{})

	test.AssertEqual(t, id, ast.MakeNormalModuleID(0))
	test.AssertEqual(t, len(table.NormalModules), 1)
	test.AssertEqual(t, table.NormalModules[0].ExecOrder, uint32(ExecOrderUnassigned))
}

func TestAddScannedModuleIndexMismatchPanics(t *testing.T) {
	table := &ModuleTable{}
	table.Lock()
	defer table.Unlock()

	source := test.SourceForTest("")
	source.Index = 5

	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic")
		}
	}()
	table.AddScannedModule(source, js_scanner.ScanResult{})
}

func TestAddExternalModule(t *testing.T) {
	table := &ModuleTable{}
	table.Lock()
	defer table.Unlock()

	id := table.AddExternalModule(logger.Path{Text: "react"})

	test.AssertEqual(t, id, ast.MakeExternalModuleID(0))
	test.AssertEqual(t, table.ExternalModules[0].Path.Text, "react")
	test.AssertEqual(t, table.ExternalModules[0].ExecOrder, uint32(ExecOrderUnassigned))
}

func TestModuleIDValidity(t *testing.T) {
	test.AssertEqual(t, ast.ModuleID{}.IsValid(), false)
	test.AssertEqual(t, ast.MakeNormalModuleID(0).IsValid(), true)
	test.AssertEqual(t, ast.MakeExternalModuleID(0).IsValid(), true)
}
