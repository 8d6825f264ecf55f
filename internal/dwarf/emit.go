package dwarf

import (
	"errors"
	"fmt"
	"io"

	"github.com/anithag/CompCert/internal/asm"
)

var (
	// ErrDuplicateID reports two distinct entries or location lists
	// sharing one id within a run.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownLocation reports a location attribute referencing a
	// list id that no supplied location list declares.
	ErrUnknownLocation = errors.New("unknown location list")
	// ErrMissingLineStart reports a symbol-flavored declaration file
	// in a unit that has no line-table start to subtract it from.
	ErrMissingLineStart = errors.New("file symbol without line table start")
)

// Unit is one compilation unit of multi-unit output.
type Unit struct {
	Section   string
	LineStart string
	Root      *Entry
	Locations []*LocationList
}

// Emitter serializes one debug information forest. All of its state is
// scoped to a single run and reset when one of the Emit entry points
// starts; it is not safe for concurrent use.
type Emitter struct {
	tgt *Target
	p   *asm.Printer
	gen asm.LabelGen

	entryLabels map[int]asm.Label
	locLabels   map[int]asm.Label
	abbrevs     *abbrevTable

	abbrevStart asm.Label
	locStart    asm.Label
	infoStart   asm.Label
	lineStart   string
}

func New(tgt *Target, w io.Writer) *Emitter {
	return &Emitter{tgt: tgt, p: asm.NewPrinter(w)}
}

func (e *Emitter) reset() {
	e.gen = asm.LabelGen{}
	e.entryLabels = map[int]asm.Label{}
	e.locLabels = map[int]asm.Label{}
	e.abbrevs = newAbbrevTable()
	e.abbrevStart = e.gen.Fresh()
	e.locStart = e.gen.Fresh()
	e.infoStart = 0
	e.lineStart = ""
}

// EmitUnits writes multi-unit output: one shared .debug_abbrev table
// covering every unit, each unit's .debug_info program in its own
// section, then one combined .debug_loc section.
func (e *Emitter) EmitUnits(units []*Unit) error {
	e.reset()
	roots := make([]*Entry, len(units))
	var locs []*LocationList
	for i, u := range units {
		roots[i] = u.Root
		locs = append(locs, u.Locations...)
	}
	if err := validate(roots, locs); err != nil {
		return err
	}
	for _, u := range units {
		if err := validateLineRefs(u.Root, u.LineStart); err != nil {
			return err
		}
	}
	for _, u := range units {
		e.computeAbbreviations(u.Root, false)
	}
	e.emitAbbrevSection()
	for _, u := range units {
		e.lineStart = u.LineStart
		e.emitInfoUnit(u.Section, u.Root)
	}
	e.emitLocSection(locs)
	return nil
}

// EmitProgram writes single-unit output: .debug_info, .debug_abbrev,
// .debug_loc and a .debug_line section holding only the start label
// referenced by the compile unit (the line program itself is produced
// elsewhere).
func (e *Emitter) EmitProgram(root *Entry, locs []*LocationList) error {
	e.reset()
	if err := validate([]*Entry{root}, locs); err != nil {
		return err
	}
	if cu, ok := root.Content.(*CompileUnit); ok {
		e.lineStart = cu.StmtList
	}
	if err := validateLineRefs(root, e.lineStart); err != nil {
		return err
	}
	e.computeAbbreviations(root, false)
	e.emitInfoUnit(".debug_info", root)
	e.emitAbbrevSection()
	e.emitLocSection(locs)
	if e.lineStart != "" {
		e.p.Section(".debug_line")
		e.p.DefineSymbol(e.lineStart)
	}
	return nil
}

func (e *Emitter) emitLocSection(locs []*LocationList) {
	if len(locs) == 0 {
		return
	}
	e.p.Section(".debug_loc")
	e.p.DefineLabel(e.locStart)
	for _, l := range locs {
		e.emitLocList(l)
	}
}

// validate rejects id collisions and dangling location references
// before any output is produced; a failed run writes nothing.
func validate(roots []*Entry, locs []*LocationList) error {
	locIDs := make(map[int]struct{}, len(locs))
	for _, l := range locs {
		if _, dup := locIDs[l.ID]; dup {
			return fmt.Errorf("location list %d: %w", l.ID, ErrDuplicateID)
		}
		locIDs[l.ID] = struct{}{}
	}
	seen := map[int]struct{}{}
	var walk func(*Entry) error
	walk = func(ent *Entry) error {
		if _, dup := seen[ent.ID]; dup {
			return fmt.Errorf("debug entry %d: %w", ent.ID, ErrDuplicateID)
		}
		seen[ent.ID] = struct{}{}
		if ref, ok := locationOf(ent.Content).(LocRef); ok {
			if _, ok := locIDs[ref.List]; !ok {
				return fmt.Errorf("debug entry %d references list %d: %w",
					ent.ID, ref.List, ErrUnknownLocation)
			}
		}
		for _, c := range ent.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}

// validateLineRefs rejects entries whose declaration file is a symbol
// when the unit carries no line-table start; emitting them would
// produce an unresolvable difference operand.
func validateLineRefs(root *Entry, lineStart string) error {
	if lineStart != "" {
		return nil
	}
	var walk func(*Entry) error
	walk = func(ent *Entry) error {
		if fl := fileLocOf(ent.Content); fl != nil && fl.FileSym != "" {
			return fmt.Errorf("debug entry %d: %w", ent.ID, ErrMissingLineStart)
		}
		for _, c := range ent.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

func fileLocOf(c Content) *FileLoc {
	switch v := c.(type) {
	case *StructureType:
		return v.FileLoc
	case *UnionType:
		return v.FileLoc
	case *EnumerationType:
		return v.FileLoc
	case *Enumerator:
		return v.FileLoc
	case *Member:
		return v.FileLoc
	case *Subprogram:
		return v.FileLoc
	case *FormalParameter:
		return v.FileLoc
	case *Variable:
		return v.FileLoc
	case *Typedef:
		return v.FileLoc
	case *ArrayType:
		return v.FileLoc
	case *UnspecifiedParameter:
		return v.FileLoc
	default:
		return nil
	}
}

func locationOf(c Content) LocationDescription {
	switch v := c.(type) {
	case *FormalParameter:
		return v.Location
	case *Variable:
		return v.Location
	default:
		return nil
	}
}
