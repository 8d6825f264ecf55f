package dwarf

// Ref identifies another debug entry by its id.
type Ref int

// Entry is one node of the debug information forest. IDs must be unique
// across the forest handed to a single emitter run; they are the join
// key for entry references and label assignment.
type Entry struct {
	ID       int
	Content  Content
	Children []*Entry
}

// Content is the closed set of tag payloads. Exactly one struct per
// DWARF construct; the encoder type-switches over it exhaustively.
type Content interface {
	Tag() uint64
}

// FileLoc is an optional (file, line) declaration coordinate. When
// FileSym is non-empty the file is written as a label difference
// against the line-table start; otherwise File is written directly.
type FileLoc struct {
	FileSym string
	File    uint32
	Line    uint32
}

// CompileUnit is the root payload of one translation unit. All fields
// are required; the producer string is built by the caller.
type CompileUnit struct {
	CompDir  string
	LowPC    string
	HighPC   string
	Name     string
	Producer string
	StmtList string
}

type BaseType struct {
	ByteSize uint32
	Encoding *uint8
	Name     string
}

type StructureType struct {
	FileLoc     *FileLoc
	ByteSize    *uint32
	Declaration bool
	Name        string
}

type UnionType struct {
	FileLoc  *FileLoc
	ByteSize *uint32
	Name     string
}

type EnumerationType struct {
	FileLoc     *FileLoc
	ByteSize    uint32
	Declaration bool
	Name        string
}

type Enumerator struct {
	FileLoc *FileLoc
	Value   int64
	Name    string
}

// Member describes a structure or union field. DataLoc is nil for
// members whose location needs no encoding (unions).
type Member struct {
	FileLoc   *FileLoc
	ByteSize  *uint32
	BitOffset *uint8
	BitSize   *uint8
	DataLoc   DataLocation
	Name      string
	Type      Ref
}

type Subprogram struct {
	FileLoc    *FileLoc
	External   bool
	Name       string
	Prototyped bool
	Type       *Ref
	LowPC      string
	HighPC     string
}

type FormalParameter struct {
	FileLoc    *FileLoc
	Artificial bool
	Name       string
	Type       Ref
	VarParam   bool
	Location   LocationDescription
}

type Variable struct {
	FileLoc     *FileLoc
	Declaration bool
	External    bool
	Name        string
	Type        Ref
	Location    LocationDescription
}

type Typedef struct {
	FileLoc *FileLoc
	Name    string
	Type    Ref
}

type PointerType struct {
	Type Ref
}

type ConstType struct {
	Type Ref
}

type VolatileType struct {
	Type Ref
}

type ArrayType struct {
	FileLoc *FileLoc
	Type    Ref
}

type SubrangeType struct {
	Type       *Ref
	UpperBound Bound
}

type SubroutineType struct {
	Prototyped bool
	Type       *Ref
}

type LexicalBlock struct {
	LowPC  string
	HighPC string
}

// CodeLabel is a DW_TAG_label entry for an assembly-level label.
type CodeLabel struct {
	LowPC string
	Name  string
}

type UnspecifiedParameter struct {
	FileLoc    *FileLoc
	Artificial bool
}

func (*CompileUnit) Tag() uint64          { return DW_TAG_compile_unit }
func (*BaseType) Tag() uint64             { return DW_TAG_base_type }
func (*StructureType) Tag() uint64        { return DW_TAG_structure_type }
func (*UnionType) Tag() uint64            { return DW_TAG_union_type }
func (*EnumerationType) Tag() uint64      { return DW_TAG_enumeration_type }
func (*Enumerator) Tag() uint64           { return DW_TAG_enumerator }
func (*Member) Tag() uint64               { return DW_TAG_member }
func (*Subprogram) Tag() uint64           { return DW_TAG_subprogram }
func (*FormalParameter) Tag() uint64      { return DW_TAG_formal_parameter }
func (*Variable) Tag() uint64             { return DW_TAG_variable }
func (*Typedef) Tag() uint64              { return DW_TAG_typedef }
func (*PointerType) Tag() uint64          { return DW_TAG_pointer_type }
func (*ConstType) Tag() uint64            { return DW_TAG_const_type }
func (*VolatileType) Tag() uint64         { return DW_TAG_volatile_type }
func (*ArrayType) Tag() uint64            { return DW_TAG_array_type }
func (*SubrangeType) Tag() uint64         { return DW_TAG_subrange_type }
func (*SubroutineType) Tag() uint64       { return DW_TAG_subroutine_type }
func (*LexicalBlock) Tag() uint64         { return DW_TAG_lexical_block }
func (*CodeLabel) Tag() uint64            { return DW_TAG_label }
func (*UnspecifiedParameter) Tag() uint64 { return DW_TAG_unspecified_parameters }

// Bound is the upper bound of a subrange: either a constant or a
// reference to an entry holding the bound.
type Bound interface {
	bound()
}

type BoundConst struct {
	Value uint64
}

type BoundRef struct {
	Ref Ref
}

func (BoundConst) bound() {}
func (BoundRef) bound()   {}

// DataLocation is a member offset: an inline expression block or a
// reference to an entry describing the location.
type DataLocation interface {
	dataLocation()
}

type DataLocBlock struct {
	Exprs []LocExpr
}

type DataLocRef struct {
	Ref Ref
}

func (DataLocBlock) dataLocation() {}
func (DataLocRef) dataLocation()   {}
