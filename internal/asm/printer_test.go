package asm

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterDirectives(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	var g LabelGen
	a := g.Fresh()
	b := g.Fresh()

	p.Section(".debug_info")
	p.DefineLabel(a)
	p.Byte(0x11)
	p.Half(0x2)
	p.Word(0xdeadbeef)
	p.ULEB(624485)
	p.SLEB(-42)
	p.Asciz(`dir "quoted"`)
	p.WordLabel(b)
	p.WordDiff(b, a)
	p.WordSym("main")
	p.WordSymDiff("fn_end", "fn_begin")
	p.DefineSymbol("Lline0")

	want := []string{
		"\t.section\t.debug_info\n",
		".L1:\n",
		"\t.byte\t0x11\n",
		"\t.2byte\t0x2\n",
		"\t.4byte\t0xdeadbeef\n",
		"\t.uleb128\t624485\n",
		"\t.sleb128\t-42\n",
		"\t.asciz\t\"dir \\\"quoted\\\"\"\n",
		"\t.4byte\t.L2\n",
		"\t.4byte\t.L2-.L1\n",
		"\t.4byte\tmain\n",
		"\t.4byte\tfn_end-fn_begin\n",
		"Lline0:\n",
	}
	out := buf.String()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func TestLabelGenFresh(t *testing.T) {
	var g LabelGen
	seen := map[Label]bool{}
	for i := 0; i < 100; i++ {
		l := g.Fresh()
		if seen[l] {
			t.Fatalf("label %v issued twice", l)
		}
		seen[l] = true
	}
}

func TestULEB128Size(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1}, {1, 1}, {127, 1}, {128, 2}, {16383, 2}, {16384, 3},
	}
	for _, c := range cases {
		if got := ULEB128Size(c.v); got != c.want {
			t.Errorf("ULEB128Size(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestSLEB128Size(t *testing.T) {
	cases := []struct {
		v    int64
		want int
	}{
		{0, 1}, {63, 1}, {-64, 1}, {64, 2}, {-65, 2}, {8191, 2}, {8192, 3},
	}
	for _, c := range cases {
		if got := SLEB128Size(c.v); got != c.want {
			t.Errorf("SLEB128Size(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
