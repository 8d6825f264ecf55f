package debuginfo

import (
	"fmt"

	"github.com/anithag/CompCert/internal/dwarf"
)

// BuildUnits converts the artifact into emitter units. producer is
// stamped into every compile unit entry.
func BuildUnits(p *Program, producer string) ([]*dwarf.Unit, error) {
	units := make([]*dwarf.Unit, 0, len(p.Units))
	for i := range p.Units {
		u, err := buildUnit(&p.Units[i], -(i + 1), producer)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", p.Units[i].Name, err)
		}
		units = append(units, u)
	}
	return units, nil
}

func buildUnit(u *Unit, rootID int, producer string) (*dwarf.Unit, error) {
	children := make([]*dwarf.Entry, 0, len(u.Entries))
	for i := range u.Entries {
		c, err := buildEntry(&u.Entries[i])
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	root := &dwarf.Entry{
		// Compile unit roots take negative ids so they can never
		// collide with front-end entry ids, which start at 1.
		ID: rootID,
		Content: &dwarf.CompileUnit{
			CompDir:  u.CompDir,
			LowPC:    u.LowPC,
			HighPC:   u.HighPC,
			Name:     u.Name,
			Producer: producer,
			StmtList: u.LineStart,
		},
		Children: children,
	}
	section := u.Section
	if section == "" {
		section = ".debug_info"
	}
	locs := make([]*dwarf.LocationList, 0, len(u.Locations))
	for i := range u.Locations {
		l, err := buildLocation(&u.Locations[i], u.LowPC)
		if err != nil {
			return nil, err
		}
		locs = append(locs, l)
	}
	return &dwarf.Unit{
		Section:   section,
		LineStart: u.LineStart,
		Root:      root,
		Locations: locs,
	}, nil
}

func buildEntry(in *Entry) (*dwarf.Entry, error) {
	content, err := buildContent(in)
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", in.ID, err)
	}
	out := &dwarf.Entry{ID: in.ID, Content: content}
	for i := range in.Children {
		c, err := buildEntry(&in.Children[i])
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, c)
	}
	return out, nil
}

func buildContent(in *Entry) (dwarf.Content, error) {
	fl := fileLoc(in)
	switch in.Tag {
	case "base_type":
		if in.ByteSize == nil {
			return nil, fmt.Errorf("base_type needs byte_size")
		}
		return &dwarf.BaseType{ByteSize: *in.ByteSize, Encoding: in.Encoding, Name: in.Name}, nil
	case "structure_type":
		return &dwarf.StructureType{FileLoc: fl, ByteSize: in.ByteSize, Declaration: in.Declaration, Name: in.Name}, nil
	case "union_type":
		return &dwarf.UnionType{FileLoc: fl, ByteSize: in.ByteSize, Name: in.Name}, nil
	case "enumeration_type":
		if in.ByteSize == nil {
			return nil, fmt.Errorf("enumeration_type needs byte_size")
		}
		return &dwarf.EnumerationType{FileLoc: fl, ByteSize: *in.ByteSize, Declaration: in.Declaration, Name: in.Name}, nil
	case "enumerator":
		return &dwarf.Enumerator{FileLoc: fl, Value: in.Value, Name: in.Name}, nil
	case "member":
		if in.Type == nil {
			return nil, fmt.Errorf("member needs type")
		}
		m := &dwarf.Member{
			FileLoc:   fl,
			ByteSize:  in.ByteSize,
			BitOffset: in.BitOffset,
			BitSize:   in.BitSize,
			Name:      in.Name,
			Type:      dwarf.Ref(*in.Type),
		}
		switch {
		case in.OffsetRef != nil:
			m.DataLoc = dwarf.DataLocRef{Ref: dwarf.Ref(*in.OffsetRef)}
		case in.Offset != nil:
			m.DataLoc = dwarf.DataLocBlock{Exprs: []dwarf.LocExpr{dwarf.PlusUconst{Value: *in.Offset}}}
		}
		return m, nil
	case "subprogram":
		sp := &dwarf.Subprogram{
			FileLoc:    fl,
			External:   in.External,
			Name:       in.Name,
			Prototyped: in.Prototyped,
			LowPC:      in.LowPC,
			HighPC:     in.HighPC,
		}
		if in.Type != nil {
			r := dwarf.Ref(*in.Type)
			sp.Type = &r
		}
		return sp, nil
	case "formal_parameter":
		if in.Type == nil {
			return nil, fmt.Errorf("formal_parameter needs type")
		}
		loc, err := location(in.Location)
		if err != nil {
			return nil, err
		}
		return &dwarf.FormalParameter{
			FileLoc:    fl,
			Artificial: in.Artificial,
			Name:       in.Name,
			Type:       dwarf.Ref(*in.Type),
			VarParam:   in.VarParam,
			Location:   loc,
		}, nil
	case "variable":
		if in.Type == nil {
			return nil, fmt.Errorf("variable needs type")
		}
		loc, err := location(in.Location)
		if err != nil {
			return nil, err
		}
		return &dwarf.Variable{
			FileLoc:     fl,
			Declaration: in.Declaration,
			External:    in.External,
			Name:        in.Name,
			Type:        dwarf.Ref(*in.Type),
			Location:    loc,
		}, nil
	case "typedef":
		if in.Type == nil {
			return nil, fmt.Errorf("typedef needs type")
		}
		return &dwarf.Typedef{FileLoc: fl, Name: in.Name, Type: dwarf.Ref(*in.Type)}, nil
	case "pointer_type":
		if in.Type == nil {
			return nil, fmt.Errorf("pointer_type needs type")
		}
		return &dwarf.PointerType{Type: dwarf.Ref(*in.Type)}, nil
	case "const_type":
		if in.Type == nil {
			return nil, fmt.Errorf("const_type needs type")
		}
		return &dwarf.ConstType{Type: dwarf.Ref(*in.Type)}, nil
	case "volatile_type":
		if in.Type == nil {
			return nil, fmt.Errorf("volatile_type needs type")
		}
		return &dwarf.VolatileType{Type: dwarf.Ref(*in.Type)}, nil
	case "array_type":
		if in.Type == nil {
			return nil, fmt.Errorf("array_type needs type")
		}
		return &dwarf.ArrayType{FileLoc: fl, Type: dwarf.Ref(*in.Type)}, nil
	case "subrange_type":
		st := &dwarf.SubrangeType{}
		if in.Type != nil {
			r := dwarf.Ref(*in.Type)
			st.Type = &r
		}
		switch {
		case in.UpperRef != nil:
			st.UpperBound = dwarf.BoundRef{Ref: dwarf.Ref(*in.UpperRef)}
		case in.UpperBound != nil:
			st.UpperBound = dwarf.BoundConst{Value: *in.UpperBound}
		}
		return st, nil
	case "subroutine_type":
		st := &dwarf.SubroutineType{Prototyped: in.Prototyped}
		if in.Type != nil {
			r := dwarf.Ref(*in.Type)
			st.Type = &r
		}
		return st, nil
	case "lexical_block":
		return &dwarf.LexicalBlock{LowPC: in.LowPC, HighPC: in.HighPC}, nil
	case "label":
		return &dwarf.CodeLabel{LowPC: in.LowPC, Name: in.Name}, nil
	case "unspecified_parameter":
		return &dwarf.UnspecifiedParameter{FileLoc: fl, Artificial: in.Artificial}, nil
	default:
		return nil, fmt.Errorf("unknown tag %q", in.Tag)
	}
}

func fileLoc(in *Entry) *dwarf.FileLoc {
	if in.Line == 0 && in.File == 0 && in.FileSym == "" {
		return nil
	}
	return &dwarf.FileLoc{FileSym: in.FileSym, File: in.File, Line: in.Line}
}

func location(d *Desc) (dwarf.LocationDescription, error) {
	if d == nil {
		return nil, nil
	}
	switch d.Kind {
	case "symbol":
		return dwarf.LocSymbol{Symbol: d.Symbol}, nil
	case "list":
		return dwarf.LocRef{List: d.List}, nil
	case "expr":
		if d.Expr == nil {
			return nil, fmt.Errorf("expr location needs expr")
		}
		x, err := expr(*d.Expr)
		if err != nil {
			return nil, err
		}
		return dwarf.LocSimple{Expr: x}, nil
	case "composite":
		xs, err := exprs(d.Exprs)
		if err != nil {
			return nil, err
		}
		return dwarf.LocComposite{Exprs: xs}, nil
	default:
		return nil, fmt.Errorf("unknown location kind %q", d.Kind)
	}
}

// block converts a description for a location list range, where a list
// reference cannot appear again.
func block(d Desc) (dwarf.LocBlock, error) {
	loc, err := location(&d)
	if err != nil {
		return nil, err
	}
	b, ok := loc.(dwarf.LocBlock)
	if !ok {
		return nil, fmt.Errorf("location kind %q not allowed inside a list", d.Kind)
	}
	return b, nil
}

func expr(in Expr) (dwarf.LocExpr, error) {
	switch in.Op {
	case "regoffset":
		return dwarf.RegOffset{Reg: in.Reg, Offset: in.Offset}, nil
	case "plus":
		return dwarf.PlusUconst{Value: in.Value}, nil
	case "piece":
		return dwarf.Piece{Bytes: in.Value}, nil
	case "reg":
		return dwarf.Register{Reg: in.Reg}, nil
	default:
		return nil, fmt.Errorf("unknown location op %q", in.Op)
	}
}

func exprs(in []Expr) ([]dwarf.LocExpr, error) {
	out := make([]dwarf.LocExpr, len(in))
	for i, x := range in {
		e, err := expr(x)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func buildLocation(in *Location, base string) (*dwarf.LocationList, error) {
	l := &dwarf.LocationList{ID: in.ID}
	if in.Relative {
		l.Base = base
	}
	for _, r := range in.Ranges {
		b, err := block(r.Desc)
		if err != nil {
			return nil, fmt.Errorf("location list %d: %w", in.ID, err)
		}
		l.Ranges = append(l.Ranges, dwarf.LocRange{Begin: r.Begin, End: r.End, Desc: b})
	}
	return l, nil
}
