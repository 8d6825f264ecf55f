package dwarf

import (
	"strings"
	"testing"
)

func TestLocExprSizes(t *testing.T) {
	tgt := DefaultTarget()
	cases := []struct {
		x    LocExpr
		want int
	}{
		{RegOffset{Reg: 5, Offset: -1}, 3},
		{RegOffset{Reg: 128, Offset: 8192}, 6},
		{PlusUconst{Value: 4}, 2},
		{PlusUconst{Value: 128}, 3},
		{Piece{Bytes: 4}, 2},
		{Register{Reg: 0}, 1},
		{Register{Reg: 31}, 1},
		{Register{Reg: 32}, 2},
	}
	for _, c := range cases {
		if got := c.x.Size(tgt); got != c.want {
			t.Errorf("%#v size = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestRegisterEncodingBoundary(t *testing.T) {
	e, buf := testEmitter()
	Register{Reg: 31}.emit(e)
	Register{Reg: 32}.emit(e)
	out := buf.String()
	// 0x50+31 = 0x6f compact, then the extended escape.
	if !strings.Contains(out, "\t.byte\t0x6f\n") {
		t.Fatalf("missing compact register opcode:\n%s", out)
	}
	if !strings.Contains(out, "\t.byte\t0x90\n\t.uleb128\t32\n") {
		t.Fatalf("missing extended register form:\n%s", out)
	}
}

func TestLocListShape(t *testing.T) {
	for _, k := range []int{0, 1, 3} {
		e, buf := testEmitter()
		l := &LocationList{ID: 7}
		for i := 0; i < k; i++ {
			l.Ranges = append(l.Ranges, LocRange{
				Begin: "b", End: "e",
				Desc: LocSimple{Expr: Register{Reg: 1}},
			})
		}
		e.emitLocList(l)
		out := buf.String()

		// k ranges, each two absolute bounds, then one double-zero
		// sentinel regardless of k.
		if got := countSub(out, "\t.4byte\tb\n\t.4byte\te\n"); got != k {
			t.Fatalf("k=%d: range bounds = %d:\n%s", k, got, out)
		}
		if got := countSub(out, "\t.4byte\t0x0\n\t.4byte\t0x0\n"); got != 1 {
			t.Fatalf("k=%d: sentinels = %d:\n%s", k, got, out)
		}
		if got := countSub(out, "\t.2byte\t0x1\n"); got != k {
			t.Fatalf("k=%d: length prefixes = %d:\n%s", k, got, out)
		}
	}
}

func TestLocListRelativeBounds(t *testing.T) {
	e, buf := testEmitter()
	l := &LocationList{
		ID:   3,
		Base: "unit_begin",
		Ranges: []LocRange{{
			Begin: "v_live", End: "v_dead",
			Desc: LocComposite{Exprs: []LocExpr{
				RegOffset{Reg: 2, Offset: 8},
				Piece{Bytes: 4},
			}},
		}},
	}
	e.emitLocList(l)
	out := buf.String()

	if !strings.Contains(out, "\t.4byte\tv_live-unit_begin\n") ||
		!strings.Contains(out, "\t.4byte\tv_dead-unit_begin\n") {
		t.Fatalf("bounds not base-relative:\n%s", out)
	}
	// Composite block: bregx(1+1+1) + piece(1+1) = 5 bytes.
	if !strings.Contains(out, "\t.2byte\t0x5\n") {
		t.Fatalf("wrong block length:\n%s", out)
	}
}

func TestLocSymbolBlock(t *testing.T) {
	e, buf := testEmitter()
	l := &LocationList{ID: 1, Ranges: []LocRange{{
		Begin: "b", End: "e",
		Desc: LocSymbol{Symbol: "globl_x"},
	}}}
	e.emitLocList(l)
	out := buf.String()

	// addr opcode plus a 4-byte address: 5 bytes.
	if !strings.Contains(out, "\t.2byte\t0x5\n\t.byte\t0x3\n\t.4byte\tglobl_x\n") {
		t.Fatalf("bad symbol block:\n%s", out)
	}
}
