package dwarf

import "github.com/anithag/CompCert/internal/asm"

// LocExpr is one primitive location operation. Size reports the encoded
// byte length so block payloads can be length-prefixed before emission.
type LocExpr interface {
	Size(t *Target) int
	emit(e *Emitter)
}

// RegOffset computes an address relative to a register, with a signed
// displacement. Always encoded in the extended register form.
type RegOffset struct {
	Reg    uint32
	Offset int64
}

func (x RegOffset) Size(t *Target) int {
	return 1 + asm.ULEB128Size(uint64(x.Reg)) + asm.SLEB128Size(x.Offset)
}

func (x RegOffset) emit(e *Emitter) {
	e.p.Byte(e.tgt.OpBregx)
	e.p.ULEB(uint64(x.Reg))
	e.p.SLEB(x.Offset)
}

// PlusUconst adds an unsigned constant to the value on the stack.
type PlusUconst struct {
	Value uint64
}

func (x PlusUconst) Size(t *Target) int { return 1 + asm.ULEB128Size(x.Value) }

func (x PlusUconst) emit(e *Emitter) {
	e.p.Byte(e.tgt.OpPlusUconst)
	e.p.ULEB(x.Value)
}

// Piece marks the width in bytes of one fragment of a composed object.
type Piece struct {
	Bytes uint64
}

func (x Piece) Size(t *Target) int { return 1 + asm.ULEB128Size(x.Bytes) }

func (x Piece) emit(e *Emitter) {
	e.p.Byte(e.tgt.OpPiece)
	e.p.ULEB(x.Bytes)
}

// Register names a plain register. Registers below 32 use the compact
// single-byte opcode; larger numbers fall back to the extended form.
type Register struct {
	Reg uint32
}

func (x Register) Size(t *Target) int {
	if x.Reg < 32 {
		return 1
	}
	return 1 + asm.ULEB128Size(uint64(x.Reg))
}

func (x Register) emit(e *Emitter) {
	if x.Reg < 32 {
		e.p.Byte(e.tgt.OpRegBase + uint8(x.Reg))
		return
	}
	e.p.Byte(e.tgt.OpRegx)
	e.p.ULEB(uint64(x.Reg))
}

// LocationDescription records where a variable or parameter lives.
// LocBlock is the subset that can be spelled out inline; location list
// ranges are restricted to it by construction, so a list reference can
// never end up inside .debug_loc itself.
type LocationDescription interface {
	locationDescription()
}

type LocBlock interface {
	LocationDescription
	blockSize(t *Target) int
	emitBlock(e *Emitter)
}

// LocSymbol is the address of a named symbol.
type LocSymbol struct {
	Symbol string
}

func (LocSymbol) locationDescription() {}

func (l LocSymbol) blockSize(t *Target) int { return 1 + t.PtrSize }

func (l LocSymbol) emitBlock(e *Emitter) {
	e.p.Byte(e.tgt.OpAddr)
	e.p.WordSym(l.Symbol)
}

// LocSimple is a single inline expression.
type LocSimple struct {
	Expr LocExpr
}

func (LocSimple) locationDescription() {}

func (l LocSimple) blockSize(t *Target) int { return l.Expr.Size(t) }

func (l LocSimple) emitBlock(e *Emitter) { l.Expr.emit(e) }

// LocComposite concatenates several expressions into one block.
type LocComposite struct {
	Exprs []LocExpr
}

func (LocComposite) locationDescription() {}

func (l LocComposite) blockSize(t *Target) int {
	n := 0
	for _, x := range l.Exprs {
		n += x.Size(t)
	}
	return n
}

func (l LocComposite) emitBlock(e *Emitter) {
	for _, x := range l.Exprs {
		x.emit(e)
	}
}

// LocRef points at a location list in .debug_loc by id.
type LocRef struct {
	List int
}

func (LocRef) locationDescription() {}

// LocRange is one validity window of a variable's location.
type LocRange struct {
	Begin string
	End   string
	Desc  LocBlock
}

// LocationList is an ordered set of disjoint ranges for one variable.
// A non-empty Base makes range bounds relative to that symbol;
// otherwise they are emitted as absolute references.
type LocationList struct {
	ID     int
	Base   string
	Ranges []LocRange
}

func (e *Emitter) emitLocList(l *LocationList) {
	e.p.DefineLabel(e.locLabel(l.ID))
	for _, r := range l.Ranges {
		if l.Base != "" {
			e.p.WordSymDiff(r.Begin, l.Base)
			e.p.WordSymDiff(r.End, l.Base)
		} else {
			e.p.WordSym(r.Begin)
			e.p.WordSym(r.End)
		}
		e.p.Half(uint16(r.Desc.blockSize(e.tgt)))
		r.Desc.emitBlock(e)
	}
	e.p.Word(0)
	e.p.Word(0)
}
