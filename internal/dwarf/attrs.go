package dwarf

// attr pairs an abbreviation spec with the closure that writes the
// value. The interner reads the specs and the serializer runs the
// closures off the same list, so the presence pattern seen by both can
// never diverge for one entry.
type attr struct {
	spec AttrSpec
	emit func()
}

func (e *Emitter) stringAttr(spec AttrSpec, s string) attr {
	return attr{spec, func() { e.p.Asciz(s) }}
}

func (e *Emitter) udataAttr(spec AttrSpec, v uint64) attr {
	return attr{spec, func() { e.p.ULEB(v) }}
}

func (e *Emitter) sdataAttr(spec AttrSpec, v int64) attr {
	return attr{spec, func() { e.p.SLEB(v) }}
}

func (e *Emitter) byteAttr(spec AttrSpec, v uint8) attr {
	return attr{spec, func() { e.p.Byte(v) }}
}

func (e *Emitter) flagAttr(spec AttrSpec, v bool) attr {
	return attr{spec, func() {
		if v {
			e.p.Byte(1)
		} else {
			e.p.Byte(0)
		}
	}}
}

func (e *Emitter) addrAttr(spec AttrSpec, sym string) attr {
	return attr{spec, func() { e.p.WordSym(sym) }}
}

// refAttr writes an entry reference as the offset of the target's
// label from the owning unit's start.
func (e *Emitter) refAttr(spec AttrSpec, r Ref) attr {
	return attr{spec, func() { e.p.WordDiff(e.entryLabel(int(r)), e.infoStart) }}
}

// lineRefAttr references the line-table start of the current unit.
func (e *Emitter) lineRefAttr(spec AttrSpec, sym string) attr {
	return attr{spec, func() { e.p.WordSym(sym) }}
}

// fileLocAttrs yields the decl_file/decl_line pair. The file is either
// a label difference against the line-table start or a direct index,
// depending on which flavor the input carries.
func (e *Emitter) fileLocAttrs(fl *FileLoc) []attr {
	file := attr{e.tgt.DeclFile, func() {
		if fl.FileSym != "" {
			e.p.WordSymDiff(fl.FileSym, e.lineStart)
		} else {
			e.p.Word(fl.File)
		}
	}}
	line := e.udataAttr(e.tgt.DeclLine, uint64(fl.Line))
	return []attr{file, line}
}

// locAttr picks the attribute form from the description's own variant:
// list reference, symbol address, single expression, or a composed
// block of expressions.
func (e *Emitter) locAttr(d LocationDescription) attr {
	switch l := d.(type) {
	case LocRef:
		return attr{e.tgt.LocListRef, func() {
			e.p.WordDiff(e.locLabel(l.List), e.locStart)
		}}
	case LocSymbol:
		return attr{e.tgt.LocBlockShort, func() {
			e.p.Byte(uint8(l.blockSize(e.tgt)))
			l.emitBlock(e)
		}}
	case LocSimple:
		return attr{e.tgt.LocBlockShort, func() {
			e.p.Byte(uint8(l.blockSize(e.tgt)))
			l.emitBlock(e)
		}}
	case LocComposite:
		return attr{e.tgt.LocBlockLong, func() {
			e.p.ULEB(uint64(l.blockSize(e.tgt)))
			l.emitBlock(e)
		}}
	default:
		panic("dwarf: unhandled location description")
	}
}

func (e *Emitter) memberLocAttr(d DataLocation) attr {
	switch m := d.(type) {
	case DataLocBlock:
		block := LocComposite{Exprs: m.Exprs}
		return attr{e.tgt.MemberBlock, func() {
			e.p.ULEB(uint64(block.blockSize(e.tgt)))
			block.emitBlock(e)
		}}
	case DataLocRef:
		return e.refAttr(e.tgt.MemberRef, m.Ref)
	default:
		panic("dwarf: unhandled data member location")
	}
}

func (e *Emitter) boundAttr(b Bound) attr {
	switch v := b.(type) {
	case BoundConst:
		return e.udataAttr(e.tgt.UpperConst, v.Value)
	case BoundRef:
		return e.refAttr(e.tgt.UpperRef, v.Ref)
	default:
		panic("dwarf: unhandled subrange bound")
	}
}

// attributes returns the present attributes of a payload in its fixed
// field order. This list is the only definition of attribute presence;
// both the abbreviation signature and the value stream derive from it.
func (e *Emitter) attributes(c Content) []attr {
	var as []attr
	switch v := c.(type) {
	case *CompileUnit:
		as = append(as,
			e.stringAttr(e.tgt.CompDir, v.CompDir),
			e.addrAttr(e.tgt.LowPC, v.LowPC),
			e.addrAttr(e.tgt.HighPC, v.HighPC),
			e.byteAttr(e.tgt.LanguageAttr, uint8(e.tgt.Language)),
			e.stringAttr(e.tgt.Name, v.Name),
			e.stringAttr(e.tgt.Producer, v.Producer),
			e.lineRefAttr(e.tgt.StmtList, v.StmtList),
		)
	case *BaseType:
		as = append(as, e.udataAttr(e.tgt.ByteSize, uint64(v.ByteSize)))
		if v.Encoding != nil {
			as = append(as, e.byteAttr(e.tgt.Encoding, *v.Encoding))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
	case *StructureType:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.ByteSize != nil {
			as = append(as, e.udataAttr(e.tgt.ByteSize, uint64(*v.ByteSize)))
		}
		if v.Declaration {
			as = append(as, e.flagAttr(e.tgt.Declaration, true))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
	case *UnionType:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.ByteSize != nil {
			as = append(as, e.udataAttr(e.tgt.ByteSize, uint64(*v.ByteSize)))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
	case *EnumerationType:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		as = append(as, e.udataAttr(e.tgt.ByteSize, uint64(v.ByteSize)))
		if v.Declaration {
			as = append(as, e.flagAttr(e.tgt.Declaration, true))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
	case *Enumerator:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		as = append(as,
			e.sdataAttr(e.tgt.ConstValue, v.Value),
			e.stringAttr(e.tgt.Name, v.Name),
		)
	case *Member:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.ByteSize != nil {
			as = append(as, e.udataAttr(e.tgt.ByteSize, uint64(*v.ByteSize)))
		}
		if v.BitOffset != nil {
			as = append(as, e.byteAttr(e.tgt.BitOffset, *v.BitOffset))
		}
		if v.BitSize != nil {
			as = append(as, e.byteAttr(e.tgt.BitSize, *v.BitSize))
		}
		if v.DataLoc != nil {
			as = append(as, e.memberLocAttr(v.DataLoc))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
	case *Subprogram:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.External {
			as = append(as, e.flagAttr(e.tgt.External, true))
		}
		as = append(as,
			e.stringAttr(e.tgt.Name, v.Name),
			e.flagAttr(e.tgt.Prototyped, v.Prototyped),
		)
		if v.Type != nil {
			as = append(as, e.refAttr(e.tgt.TypeRef, *v.Type))
		}
		if v.LowPC != "" {
			as = append(as, e.addrAttr(e.tgt.LowPC, v.LowPC))
		}
		if v.HighPC != "" {
			as = append(as, e.addrAttr(e.tgt.HighPC, v.HighPC))
		}
	case *FormalParameter:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.Artificial {
			as = append(as, e.flagAttr(e.tgt.Artificial, true))
		}
		if v.Location != nil {
			as = append(as, e.locAttr(v.Location))
		}
		if v.Name != "" {
			as = append(as, e.stringAttr(e.tgt.Name, v.Name))
		}
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
		if v.VarParam {
			as = append(as, e.flagAttr(e.tgt.VarParam, true))
		}
	case *Variable:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.Declaration {
			as = append(as, e.flagAttr(e.tgt.Declaration, true))
		}
		if v.External {
			as = append(as, e.flagAttr(e.tgt.External, true))
		}
		if v.Location != nil {
			as = append(as, e.locAttr(v.Location))
		}
		as = append(as,
			e.stringAttr(e.tgt.Name, v.Name),
			e.refAttr(e.tgt.TypeRef, v.Type),
		)
	case *Typedef:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		as = append(as,
			e.stringAttr(e.tgt.Name, v.Name),
			e.refAttr(e.tgt.TypeRef, v.Type),
		)
	case *PointerType:
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
	case *ConstType:
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
	case *VolatileType:
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
	case *ArrayType:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		as = append(as, e.refAttr(e.tgt.TypeRef, v.Type))
	case *SubrangeType:
		if v.Type != nil {
			as = append(as, e.refAttr(e.tgt.TypeRef, *v.Type))
		}
		if v.UpperBound != nil {
			as = append(as, e.boundAttr(v.UpperBound))
		}
	case *SubroutineType:
		as = append(as, e.flagAttr(e.tgt.Prototyped, v.Prototyped))
		if v.Type != nil {
			as = append(as, e.refAttr(e.tgt.TypeRef, *v.Type))
		}
	case *LexicalBlock:
		if v.LowPC != "" {
			as = append(as, e.addrAttr(e.tgt.LowPC, v.LowPC))
		}
		if v.HighPC != "" {
			as = append(as, e.addrAttr(e.tgt.HighPC, v.HighPC))
		}
	case *CodeLabel:
		as = append(as,
			e.addrAttr(e.tgt.LowPC, v.LowPC),
			e.stringAttr(e.tgt.Name, v.Name),
		)
	case *UnspecifiedParameter:
		if v.FileLoc != nil {
			as = append(as, e.fileLocAttrs(v.FileLoc)...)
		}
		if v.Artificial {
			as = append(as, e.flagAttr(e.tgt.Artificial, true))
		}
	default:
		panic("dwarf: unhandled entry payload")
	}
	return as
}
