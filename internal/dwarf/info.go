package dwarf

// emitInfoUnit writes one complete .debug_info program into the named
// section: unit header, entry tree, trailing null, end label. The unit
// length is an assembler-resolved difference, so no byte counting
// happens here.
func (e *Emitter) emitInfoUnit(section string, root *Entry) {
	e.p.Section(section)
	e.infoStart = e.gen.Fresh()
	e.p.DefineLabel(e.infoStart)
	bodyStart := e.gen.Fresh()
	end := e.gen.Fresh()
	e.p.WordDiff(end, bodyStart)
	e.p.DefineLabel(bodyStart)
	e.p.Half(dwarfVersion)
	e.p.WordLabel(e.abbrevStart)
	e.p.Byte(uint8(e.tgt.PtrSize))
	e.emitEntry(root, nil)
	e.p.Byte(0)
	e.p.DefineLabel(end)
}

// emitEntry serializes one entry in pre-order. sibling is the next
// entry at the same level, or nil for the last one; both the sibling
// offset and the abbreviation signature depend on it. A children list,
// when present, is closed by a single null byte.
func (e *Emitter) emitEntry(ent *Entry, sibling *Entry) {
	e.p.DefineLabel(e.entryLabel(ent.ID))
	e.p.ULEB(e.abbrevCode(ent, sibling != nil))
	if sibling != nil {
		e.p.WordDiff(e.entryLabel(sibling.ID), e.infoStart)
	}
	for _, a := range e.attributes(ent.Content) {
		a.emit()
	}
	for i, c := range ent.Children {
		var next *Entry
		if i+1 < len(ent.Children) {
			next = ent.Children[i+1]
		}
		e.emitEntry(c, next)
	}
	if len(ent.Children) > 0 {
		e.p.Byte(0)
	}
}
