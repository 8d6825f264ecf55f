package dwarf

// AttrSpec is an (attribute, form) encoding pair as it appears in an
// abbreviation declaration.
type AttrSpec struct {
	Attr uint64
	Form uint64
}

// Target supplies the ABI-dependent encoding tables: which form each
// attribute is written with, the pointer width, and the location
// expression opcodes. The emitter never hardcodes these; swapping the
// Target retargets the whole output.
type Target struct {
	PtrSize  int
	Language uint32

	Sibling       AttrSpec
	Name          AttrSpec
	CompDir       AttrSpec
	Producer      AttrSpec
	LanguageAttr  AttrSpec
	StmtList      AttrSpec
	LowPC         AttrSpec
	HighPC        AttrSpec
	DeclFile      AttrSpec
	DeclLine      AttrSpec
	ByteSize      AttrSpec
	BitOffset     AttrSpec
	BitSize       AttrSpec
	Encoding      AttrSpec
	ConstValue    AttrSpec
	Declaration   AttrSpec
	External      AttrSpec
	Prototyped    AttrSpec
	Artificial    AttrSpec
	VarParam      AttrSpec
	TypeRef       AttrSpec
	UpperConst    AttrSpec
	UpperRef      AttrSpec
	MemberBlock   AttrSpec
	MemberRef     AttrSpec
	LocBlockShort AttrSpec
	LocBlockLong  AttrSpec
	LocListRef    AttrSpec

	OpAddr       uint8
	OpRegBase    uint8
	OpRegx       uint8
	OpBregx      uint8
	OpPlusUconst uint8
	OpPiece      uint8
}

// DefaultTarget returns the ELF/GCC-compatible encoding table for a
// 32-bit address target.
func DefaultTarget() *Target {
	return &Target{
		PtrSize:  4,
		Language: DW_LANG_C89,

		Sibling:       AttrSpec{DW_AT_sibling, DW_FORM_ref4},
		Name:          AttrSpec{DW_AT_name, DW_FORM_string},
		CompDir:       AttrSpec{DW_AT_comp_dir, DW_FORM_string},
		Producer:      AttrSpec{DW_AT_producer, DW_FORM_string},
		LanguageAttr:  AttrSpec{DW_AT_language, DW_FORM_data1},
		StmtList:      AttrSpec{DW_AT_stmt_list, DW_FORM_data4},
		LowPC:         AttrSpec{DW_AT_low_pc, DW_FORM_addr},
		HighPC:        AttrSpec{DW_AT_high_pc, DW_FORM_addr},
		DeclFile:      AttrSpec{DW_AT_decl_file, DW_FORM_data4},
		DeclLine:      AttrSpec{DW_AT_decl_line, DW_FORM_udata},
		ByteSize:      AttrSpec{DW_AT_byte_size, DW_FORM_udata},
		BitOffset:     AttrSpec{DW_AT_bit_offset, DW_FORM_data1},
		BitSize:       AttrSpec{DW_AT_bit_size, DW_FORM_data1},
		Encoding:      AttrSpec{DW_AT_encoding, DW_FORM_data1},
		ConstValue:    AttrSpec{DW_AT_const_value, DW_FORM_sdata},
		Declaration:   AttrSpec{DW_AT_declaration, DW_FORM_flag},
		External:      AttrSpec{DW_AT_external, DW_FORM_flag},
		Prototyped:    AttrSpec{DW_AT_prototyped, DW_FORM_flag},
		Artificial:    AttrSpec{DW_AT_artificial, DW_FORM_flag},
		VarParam:      AttrSpec{DW_AT_variable_parameter, DW_FORM_flag},
		TypeRef:       AttrSpec{DW_AT_type, DW_FORM_ref4},
		UpperConst:    AttrSpec{DW_AT_upper_bound, DW_FORM_udata},
		UpperRef:      AttrSpec{DW_AT_upper_bound, DW_FORM_ref4},
		MemberBlock:   AttrSpec{DW_AT_data_member_location, DW_FORM_block},
		MemberRef:     AttrSpec{DW_AT_data_member_location, DW_FORM_ref4},
		LocBlockShort: AttrSpec{DW_AT_location, DW_FORM_block1},
		LocBlockLong:  AttrSpec{DW_AT_location, DW_FORM_block},
		LocListRef:    AttrSpec{DW_AT_location, DW_FORM_data4},

		OpAddr:       DW_OP_addr,
		OpRegBase:    DW_OP_reg0,
		OpRegx:       DW_OP_regx,
		OpBregx:      DW_OP_bregx,
		OpPlusUconst: DW_OP_plus_uconst,
		OpPiece:      DW_OP_piece,
	}
}
