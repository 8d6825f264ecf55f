// Package asm writes GNU-assembler directives for debug sections.
package asm

import (
	"fmt"
	"io"
	"strconv"
)

// Label is an assembler-local symbol allocated by the caller.
type Label int

// String renders the label the way GNU as expects local symbols.
func (l Label) String() string { return ".L" + strconv.Itoa(int(l)) }

// LabelGen hands out fresh labels. The zero value is ready to use.
type LabelGen struct {
	next Label
}

// Fresh returns a label that has not been returned before.
func (g *LabelGen) Fresh() Label {
	g.next++
	return g.next
}

// Printer emits assembler directives to an output stream. Writes are
// sequential and unbuffered by the printer itself; wrap the writer in a
// bufio.Writer when emitting large programs.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Section switches the current output section.
func (p *Printer) Section(name string) {
	fmt.Fprintf(p.w, "\t.section\t%s\n", name)
}

// DefineLabel places l at the current position.
func (p *Printer) DefineLabel(l Label) {
	fmt.Fprintf(p.w, "%s:\n", l)
}

// DefineSymbol places a named symbol at the current position.
func (p *Printer) DefineSymbol(name string) {
	fmt.Fprintf(p.w, "%s:\n", name)
}

func (p *Printer) Byte(v uint8) {
	fmt.Fprintf(p.w, "\t.byte\t%#x\n", v)
}

func (p *Printer) Half(v uint16) {
	fmt.Fprintf(p.w, "\t.2byte\t%#x\n", v)
}

func (p *Printer) Word(v uint32) {
	fmt.Fprintf(p.w, "\t.4byte\t%#x\n", v)
}

func (p *Printer) ULEB(v uint64) {
	fmt.Fprintf(p.w, "\t.uleb128\t%d\n", v)
}

func (p *Printer) SLEB(v int64) {
	fmt.Fprintf(p.w, "\t.sleb128\t%d\n", v)
}

// Asciz emits a NUL-terminated string literal.
func (p *Printer) Asciz(s string) {
	fmt.Fprintf(p.w, "\t.asciz\t%q\n", s)
}

// WordLabel emits a 4-byte reference to a local label.
func (p *Printer) WordLabel(l Label) {
	fmt.Fprintf(p.w, "\t.4byte\t%s\n", l)
}

// WordSym emits a 4-byte reference to a named symbol.
func (p *Printer) WordSym(name string) {
	fmt.Fprintf(p.w, "\t.4byte\t%s\n", name)
}

// WordDiff emits a 4-byte difference a-b, resolved by the assembler.
func (p *Printer) WordDiff(a, b fmt.Stringer) {
	fmt.Fprintf(p.w, "\t.4byte\t%s-%s\n", a, b)
}

// WordSymDiff is WordDiff over raw symbol names.
func (p *Printer) WordSymDiff(a, b string) {
	fmt.Fprintf(p.w, "\t.4byte\t%s-%s\n", a, b)
}

// Sym adapts a symbol name to the Stringer shape used by WordDiff.
type Sym string

func (s Sym) String() string { return string(s) }
