package dwarf

import "strconv"

// abbrev is one interned abbreviation declaration.
type abbrev struct {
	code        uint64
	tag         uint64
	hasChildren bool
	hasSibling  bool
	specs       []AttrSpec
}

// abbrevTable deduplicates abbreviations by their canonical key. Codes
// start at 1 and grow densely in first-discovered order, so a fixed
// traversal yields a stable code assignment.
type abbrevTable struct {
	byKey map[string]*abbrev
	order []*abbrev
}

func newAbbrevTable() *abbrevTable {
	return &abbrevTable{byKey: map[string]*abbrev{}}
}

// abbrevKey serializes the signature: tag, child-presence byte, the
// sibling marker when a following sibling exists, then each present
// (attribute, form) pair in the tag's field order.
func abbrevKey(tag uint64, hasChildren, hasSibling bool, specs []AttrSpec) string {
	b := make([]byte, 0, 16+8*len(specs))
	b = strconv.AppendUint(b, tag, 16)
	if hasChildren {
		b = append(b, ",1"...)
	} else {
		b = append(b, ",0"...)
	}
	if hasSibling {
		b = append(b, ",s"...)
	}
	for _, s := range specs {
		b = append(b, ';')
		b = strconv.AppendUint(b, s.Attr, 16)
		b = append(b, ':')
		b = strconv.AppendUint(b, s.Form, 16)
	}
	return string(b)
}

// abbrevCode interns the entry's signature and returns its code. The
// same signature always maps to the same code within a run.
func (e *Emitter) abbrevCode(ent *Entry, hasSibling bool) uint64 {
	attrs := e.attributes(ent.Content)
	specs := make([]AttrSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = a.spec
	}
	key := abbrevKey(ent.Content.Tag(), len(ent.Children) > 0, hasSibling, specs)
	if ab, ok := e.abbrevs.byKey[key]; ok {
		return ab.code
	}
	ab := &abbrev{
		code:        uint64(len(e.abbrevs.order) + 1),
		tag:         ent.Content.Tag(),
		hasChildren: len(ent.Children) > 0,
		hasSibling:  hasSibling,
		specs:       specs,
	}
	e.abbrevs.byKey[key] = ab
	e.abbrevs.order = append(e.abbrevs.order, ab)
	return ab.code
}

// computeAbbreviations walks the tree the same way the serializer will,
// so every code is assigned before any .debug_info byte is written.
func (e *Emitter) computeAbbreviations(ent *Entry, hasSibling bool) {
	e.abbrevCode(ent, hasSibling)
	for i, c := range ent.Children {
		e.computeAbbreviations(c, i+1 < len(ent.Children))
	}
}

// emitAbbrevSection renders the table in code order. Each declaration
// ends with a (0,0) attribute pair; the table ends with a zero code.
func (e *Emitter) emitAbbrevSection() {
	e.p.Section(".debug_abbrev")
	e.p.DefineLabel(e.abbrevStart)
	for _, ab := range e.abbrevs.order {
		e.p.ULEB(ab.code)
		e.p.ULEB(ab.tag)
		if ab.hasChildren {
			e.p.Byte(1)
		} else {
			e.p.Byte(0)
		}
		if ab.hasSibling {
			e.p.ULEB(e.tgt.Sibling.Attr)
			e.p.ULEB(e.tgt.Sibling.Form)
		}
		for _, s := range ab.specs {
			e.p.ULEB(s.Attr)
			e.p.ULEB(s.Form)
		}
		e.p.ULEB(0)
		e.p.ULEB(0)
	}
	e.p.SLEB(0)
}
