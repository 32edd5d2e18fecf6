package js_ast

import (
	"testing"

	"github.com/kilnjs/kiln/internal/test"
)

func TestGenerateNonUniqueNameFromPath(t *testing.T) {
	expectName := func(path string, expected string) {
		t.Helper()
		test.AssertEqual(t, GenerateNonUniqueNameFromPath(path), expected)
	}

	expectName("<stdin>", "stdin")
	expectName("a/b/c.js", "c")
	expectName("a/b/c.min.js", "c_min")
	expectName("プロジェクト/index.js", "_")
	expectName("node_modules/demo-pkg/index.js", "demo_pkg")
	expectName("node_modules/demo-pkg/index.min.js", "index_min")
	expectName("C:\\demo-pkg\\index.js", "demo_pkg")
	expectName("dir/123_file.js", "file")
	expectName("dir/123.js", "_")
	expectName("111/222.js", "_")
	expectName("dir/trailing//", "trailing")
}

func TestPlatformIndependentPathDirBaseExt(t *testing.T) {
	expectParts := func(path string, dir string, base string, ext string) {
		t.Helper()
		observedDir, observedBase, observedExt := PlatformIndependentPathDirBaseExt(path)
		test.AssertEqual(t, observedDir, dir)
		test.AssertEqual(t, observedBase, base)
		test.AssertEqual(t, observedExt, ext)
	}

	expectParts("a/b/c.js", "a/b", "c", ".js")
	expectParts("c.js", "", "c", ".js")
	expectParts("c", "", "c", "")
	expectParts("a\\b\\c.js", "a\\b", "c", ".js")
	expectParts("a/b/", "a", "b", "")
}

func TestUnaryAssignTarget(t *testing.T) {
	test.AssertEqual(t, UnOpNot.UnaryAssignTarget(), AssignTargetNone)
	test.AssertEqual(t, UnOpTypeof.UnaryAssignTarget(), AssignTargetNone)
	test.AssertEqual(t, UnOpPreInc.UnaryAssignTarget(), AssignTargetUpdate)
	test.AssertEqual(t, UnOpPreDec.UnaryAssignTarget(), AssignTargetUpdate)
	test.AssertEqual(t, UnOpPostInc.UnaryAssignTarget(), AssignTargetUpdate)
	test.AssertEqual(t, UnOpPostDec.UnaryAssignTarget(), AssignTargetUpdate)
}

func TestBinaryAssignTarget(t *testing.T) {
	test.AssertEqual(t, BinOpAdd.BinaryAssignTarget(), AssignTargetNone)
	test.AssertEqual(t, BinOpComma.BinaryAssignTarget(), AssignTargetNone)
	test.AssertEqual(t, BinOpAssign.BinaryAssignTarget(), AssignTargetReplace)
	test.AssertEqual(t, BinOpAddAssign.BinaryAssignTarget(), AssignTargetUpdate)
	test.AssertEqual(t, BinOpNullishCoalescingAssign.BinaryAssignTarget(), AssignTargetUpdate)
}

func TestExportsKindString(t *testing.T) {
	test.AssertEqual(t, ExportsNone.String(), "none")
	test.AssertEqual(t, ExportsESM.String(), "esm")
	test.AssertEqual(t, ExportsCommonJS.String(), "cjs")
}
