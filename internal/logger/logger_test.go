package logger

import (
	"testing"
)

func assertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%v != %v", observed, expected)
	}
}

func TestDeferLogHasErrors(t *testing.T) {
	log := NewDeferLog()
	assertEqual(t, log.HasErrors(), false)

	log.AddMsg(Msg{Kind: Warning, Data: MsgData{Text: "watch out"}})
	assertEqual(t, log.HasErrors(), false)

	log.AddMsg(Msg{Kind: Error, Data: MsgData{Text: "boom"}})
	assertEqual(t, log.HasErrors(), true)
}

func TestDeferLogSortsByLocation(t *testing.T) {
	log := NewDeferLog()
	log.AddMsg(Msg{Kind: Error, Data: MsgData{Location: &MsgLocation{File: "b.js", Line: 1}}})
	log.AddMsg(Msg{Kind: Error, Data: MsgData{Location: &MsgLocation{File: "a.js", Line: 2}}})
	log.AddMsg(Msg{Kind: Error, Data: MsgData{Location: &MsgLocation{File: "a.js", Line: 1}}})
	log.AddMsg(Msg{Kind: Warning, Data: MsgData{Text: "no location"}})

	msgs := log.Done()

	// Messages without a location sort first, then by file, line, and column
	assertEqual(t, len(msgs), 4)
	assertEqual(t, msgs[0].Data.Text, "no location")
	assertEqual(t, msgs[1].Data.Location.File, "a.js")
	assertEqual(t, msgs[1].Data.Location.Line, 1)
	assertEqual(t, msgs[2].Data.Location.File, "a.js")
	assertEqual(t, msgs[2].Data.Location.Line, 2)
	assertEqual(t, msgs[3].Data.Location.File, "b.js")
}

func TestRangeOfString(t *testing.T) {
	source := Source{Contents: `import x from "./dep"`}

	r := source.RangeOfString(Loc{Start: 14})
	assertEqual(t, r.Loc.Start, int32(14))
	assertEqual(t, r.Len, int32(7))
	assertEqual(t, source.TextForRange(r), `"./dep"`)
}

func TestRangeOfStringSingleQuotes(t *testing.T) {
	source := Source{Contents: `require('dep')`}

	r := source.RangeOfString(Loc{Start: 8})
	assertEqual(t, source.TextForRange(r), `'dep'`)
}

func TestRangeOfStringEscapedQuote(t *testing.T) {
	source := Source{Contents: `"a\"b"`}

	r := source.RangeOfString(Loc{Start: 0})
	assertEqual(t, r.Len, int32(6))
}

func TestRangeOfStringNotAString(t *testing.T) {
	source := Source{Contents: `hello`}

	r := source.RangeOfString(Loc{Start: 0})
	assertEqual(t, r.Len, int32(0))
}

func TestLocationOrNil(t *testing.T) {
	source := Source{
		PrettyPath: "a.js",
		Contents:   "const a = 1;\nconst b = 2;\n",
	}

	location := LocationOrNil(&source, Range{Loc: Loc{Start: 19}, Len: 1})
	assertEqual(t, location.File, "a.js")
	assertEqual(t, location.Line, 2)
	assertEqual(t, location.Column, 6)
	assertEqual(t, location.LineText, "const b = 2;")

	assertEqual(t, LocationOrNil(nil, Range{}), (*MsgLocation)(nil))
}

func TestMsgKindString(t *testing.T) {
	assertEqual(t, Error.String(), "error")
	assertEqual(t, Warning.String(), "warning")
}

func TestErrorAndWarningSummary(t *testing.T) {
	assertEqual(t, errorAndWarningSummary(1, 0), "1 error")
	assertEqual(t, errorAndWarningSummary(2, 0), "2 errors")
	assertEqual(t, errorAndWarningSummary(0, 1), "1 warning")
	assertEqual(t, errorAndWarningSummary(2, 3), "3 warnings and 2 errors")
}

func TestPathSortOrder(t *testing.T) {
	a := Path{Text: "a", Namespace: "file"}
	b := Path{Text: "b", Namespace: "file"}
	virtual := Path{Text: "a", Namespace: "virtual"}

	assertEqual(t, a.ComesBeforeInSortedOrder(b), true)
	assertEqual(t, b.ComesBeforeInSortedOrder(a), false)

	// Namespaces sort in reverse so "file" comes after everything else
	assertEqual(t, virtual.ComesBeforeInSortedOrder(a), true)
}
