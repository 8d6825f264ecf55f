package dwarf

import "github.com/anithag/CompCert/internal/asm"

// entryLabel returns the label that marks entry id in .debug_info,
// allocating it on first use. Forward references therefore work: the
// label is handed out before the entry is printed and defined when the
// serializer reaches it.
func (e *Emitter) entryLabel(id int) asm.Label {
	if l, ok := e.entryLabels[id]; ok {
		return l
	}
	l := e.gen.Fresh()
	e.entryLabels[id] = l
	return l
}

// locLabel is the same memoized allocation for location list ids.
// Entry ids and location ids are separate key spaces and may overlap.
func (e *Emitter) locLabel(id int) asm.Label {
	if l, ok := e.locLabels[id]; ok {
		return l
	}
	l := e.gen.Fresh()
	e.locLabels[id] = l
	return l
}
