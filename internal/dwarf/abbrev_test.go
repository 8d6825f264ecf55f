package dwarf

import (
	"bytes"
	"testing"
)

func testEmitter() (*Emitter, *bytes.Buffer) {
	var buf bytes.Buffer
	e := New(DefaultTarget(), &buf)
	e.reset()
	return e, &buf
}

func u8(v uint8) *uint8    { return &v }
func u32(v uint32) *uint32 { return &v }
func ref(v int) *Ref       { r := Ref(v); return &r }

func baseTypeEntry(id int) *Entry {
	return &Entry{ID: id, Content: &BaseType{ByteSize: 4, Encoding: u8(DW_ATE_signed), Name: "int"}}
}

func TestAbbrevDedup(t *testing.T) {
	e, _ := testEmitter()
	a := e.abbrevCode(baseTypeEntry(1), false)
	b := e.abbrevCode(baseTypeEntry(2), false)
	if a != b {
		t.Fatalf("identical signatures got codes %d and %d", a, b)
	}
}

func TestAbbrevSiblingFlagSplitsSignature(t *testing.T) {
	e, _ := testEmitter()
	a := e.abbrevCode(baseTypeEntry(1), true)
	b := e.abbrevCode(baseTypeEntry(2), false)
	if a == b {
		t.Fatalf("sibling flag must change the signature, both got %d", a)
	}
}

func TestAbbrevPresenceSplitsSignature(t *testing.T) {
	e, _ := testEmitter()
	withEnc := e.abbrevCode(baseTypeEntry(1), false)
	noEnc := e.abbrevCode(&Entry{ID: 2, Content: &BaseType{ByteSize: 4, Name: "int"}}, false)
	if withEnc == noEnc {
		t.Fatalf("attribute presence must change the signature, both got %d", withEnc)
	}
}

func TestAbbrevChildPresenceSplitsSignature(t *testing.T) {
	e, _ := testEmitter()
	leaf := e.abbrevCode(baseTypeEntry(1), false)
	parent := &Entry{
		ID:       2,
		Content:  &BaseType{ByteSize: 4, Encoding: u8(DW_ATE_signed), Name: "int"},
		Children: []*Entry{baseTypeEntry(3)},
	}
	if got := e.abbrevCode(parent, false); got == leaf {
		t.Fatalf("child presence must change the signature, both got %d", leaf)
	}
}

func TestAbbrevCodesDense(t *testing.T) {
	e, _ := testEmitter()
	entries := []*Entry{
		baseTypeEntry(1),
		{ID: 2, Content: &PointerType{Type: 1}},
		{ID: 3, Content: &ConstType{Type: 1}},
		{ID: 4, Content: &Typedef{Name: "word", Type: 1}},
	}
	for _, ent := range entries {
		e.abbrevCode(ent, false)
		e.abbrevCode(ent, true)
	}
	if len(e.abbrevs.order) == 0 {
		t.Fatal("no abbreviations interned")
	}
	for i, ab := range e.abbrevs.order {
		if ab.code != uint64(i+1) {
			t.Fatalf("code at position %d is %d, want %d", i, ab.code, i+1)
		}
	}
}

func TestAbbrevAssignmentDeterministic(t *testing.T) {
	build := func() map[string]uint64 {
		e, _ := testEmitter()
		root := &Entry{
			ID:      -1,
			Content: &CompileUnit{CompDir: "/src", LowPC: "b", HighPC: "e", Name: "m.c", Producer: "p", StmtList: "L"},
			Children: []*Entry{
				baseTypeEntry(1),
				{ID: 2, Content: &PointerType{Type: 1}},
				{ID: 3, Content: &Variable{Name: "g", Type: 1, Location: LocSymbol{Symbol: "g"}}},
			},
		}
		e.computeAbbreviations(root, false)
		out := map[string]uint64{}
		for k, ab := range e.abbrevs.byKey {
			out[k] = ab.code
		}
		return out
	}
	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("table sizes differ: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("key %q got %d then %d", k, v, b[k])
		}
	}
}

func TestAbbrevSectionLayout(t *testing.T) {
	e, buf := testEmitter()
	root := &Entry{
		ID:       -1,
		Content:  &CompileUnit{CompDir: "/src", LowPC: "b", HighPC: "e", Name: "m.c", Producer: "p", StmtList: "L"},
		Children: []*Entry{baseTypeEntry(1), baseTypeEntry(2)},
	}
	e.computeAbbreviations(root, false)
	e.emitAbbrevSection()
	out := buf.String()

	if !bytes.Contains(buf.Bytes(), []byte("\t.section\t.debug_abbrev\n")) {
		t.Fatalf("missing abbrev section header:\n%s", out)
	}
	// Three declarations: compile unit, base type with sibling, base
	// type without. Each ends in a (0,0) pair; the table ends in one
	// signed zero.
	if got := countSub(out, "\t.uleb128\t0\n\t.uleb128\t0\n"); got != 3 {
		t.Fatalf("declaration terminators = %d, want 3:\n%s", got, out)
	}
	if got := countSub(out, "\t.sleb128\t0\n"); got != 1 {
		t.Fatalf("table terminators = %d, want 1:\n%s", got, out)
	}
}
