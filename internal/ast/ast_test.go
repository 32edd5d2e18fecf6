package ast

import (
	"testing"
)

func TestImportKindIsStatic(t *testing.T) {
	if !ImportStmt.IsStatic() {
		t.Fatal("import statements are static")
	}
	if !ImportRequire.IsStatic() {
		t.Fatal("require calls are static")
	}
	if ImportDynamic.IsStatic() {
		t.Fatal("dynamic imports are not static")
	}
}

func TestImportRecordFlags(t *testing.T) {
	flags := ContainsImportStar | IsPlainImport
	if !flags.Has(ContainsImportStar) || !flags.Has(IsPlainImport) {
		t.Fatal("expected both flags to be set")
	}
	if flags.Has(ContainsDefaultAlias) {
		t.Fatal("expected the default alias flag to be clear")
	}
}

func TestInvalidRefIsNotAValidSymbol(t *testing.T) {
	if InvalidRef == (Ref{}) {
		t.Fatal("the invalid ref must not collide with the first symbol of the first module")
	}
}
