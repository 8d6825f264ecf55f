// Package dwarf renders compiler debug entries as DWARF version 2
// assembly: .debug_abbrev, .debug_info and .debug_loc, plus the
// .debug_line anchor in single-unit output.
package dwarf

// DWARF 2 tag encodings, section 7.5.3 of the standard.
const (
	DW_TAG_array_type             = 0x01
	DW_TAG_enumeration_type       = 0x04
	DW_TAG_formal_parameter       = 0x05
	DW_TAG_label                  = 0x0a
	DW_TAG_lexical_block          = 0x0b
	DW_TAG_member                 = 0x0d
	DW_TAG_pointer_type           = 0x0f
	DW_TAG_compile_unit           = 0x11
	DW_TAG_structure_type         = 0x13
	DW_TAG_subroutine_type        = 0x15
	DW_TAG_typedef                = 0x16
	DW_TAG_union_type             = 0x17
	DW_TAG_unspecified_parameters = 0x18
	DW_TAG_subrange_type          = 0x21
	DW_TAG_base_type              = 0x24
	DW_TAG_const_type             = 0x26
	DW_TAG_enumerator             = 0x28
	DW_TAG_subprogram             = 0x2e
	DW_TAG_variable               = 0x34
	DW_TAG_volatile_type          = 0x35
)

// DWARF 2 attribute encodings.
const (
	DW_AT_sibling              = 0x01
	DW_AT_location             = 0x02
	DW_AT_name                 = 0x03
	DW_AT_byte_size            = 0x0b
	DW_AT_bit_offset           = 0x0c
	DW_AT_bit_size             = 0x0d
	DW_AT_stmt_list            = 0x10
	DW_AT_low_pc               = 0x11
	DW_AT_high_pc              = 0x12
	DW_AT_language             = 0x13
	DW_AT_comp_dir             = 0x1b
	DW_AT_const_value          = 0x1c
	DW_AT_producer             = 0x25
	DW_AT_prototyped           = 0x27
	DW_AT_upper_bound          = 0x2f
	DW_AT_artificial           = 0x34
	DW_AT_data_member_location = 0x38
	DW_AT_decl_file            = 0x3a
	DW_AT_decl_line            = 0x3b
	DW_AT_declaration          = 0x3c
	DW_AT_encoding             = 0x3e
	DW_AT_external             = 0x3f
	DW_AT_type                 = 0x49
	DW_AT_variable_parameter   = 0x4b
)

// DWARF 2 form encodings.
const (
	DW_FORM_addr   = 0x01
	DW_FORM_block2 = 0x03
	DW_FORM_block4 = 0x04
	DW_FORM_data2  = 0x05
	DW_FORM_data4  = 0x06
	DW_FORM_data8  = 0x07
	DW_FORM_string = 0x08
	DW_FORM_block  = 0x09
	DW_FORM_block1 = 0x0a
	DW_FORM_data1  = 0x0b
	DW_FORM_flag   = 0x0c
	DW_FORM_sdata  = 0x0d
	DW_FORM_strp   = 0x0e
	DW_FORM_udata  = 0x0f
	DW_FORM_ref4   = 0x13
)

// Location expression opcodes.
const (
	DW_OP_addr        = 0x03
	DW_OP_plus_uconst = 0x23
	DW_OP_reg0        = 0x50
	DW_OP_breg0       = 0x70
	DW_OP_regx        = 0x90
	DW_OP_bregx       = 0x92
	DW_OP_piece       = 0x93
)

// Base type encodings for DW_AT_encoding.
const (
	DW_ATE_address       = 0x01
	DW_ATE_boolean       = 0x02
	DW_ATE_float         = 0x04
	DW_ATE_signed        = 0x05
	DW_ATE_signed_char   = 0x06
	DW_ATE_unsigned      = 0x07
	DW_ATE_unsigned_char = 0x08
)

// Source languages.
const (
	DW_LANG_C89 = 0x01
	DW_LANG_C   = 0x02
)

const dwarfVersion = 0x2
