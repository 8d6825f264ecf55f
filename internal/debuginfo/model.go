// Package debuginfo defines the JSON debug information artifact
// produced by the compiler front end and converts it into the entry
// forest consumed by the assembly printer.
package debuginfo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Program is the top-level artifact: one entry per translation unit.
type Program struct {
	Triple string `json:"triple,omitempty"`
	Units  []Unit `json:"units"`
}

// Unit describes one translation unit and its location lists.
type Unit struct {
	Name      string     `json:"name"`
	CompDir   string     `json:"comp_dir"`
	Section   string     `json:"section,omitempty"`
	LowPC     string     `json:"low_pc"`
	HighPC    string     `json:"high_pc"`
	LineStart string     `json:"line_start"`
	Entries   []Entry    `json:"entries"`
	Locations []Location `json:"locations,omitempty"`
}

// Entry is one debug entry node. The Tag string selects which fields
// are meaningful; unknown tags are rejected during conversion.
type Entry struct {
	ID          int      `json:"id"`
	Tag         string   `json:"tag"`
	Name        string   `json:"name,omitempty"`
	Type        *int     `json:"type,omitempty"`
	ByteSize    *uint32  `json:"byte_size,omitempty"`
	Encoding    *uint8   `json:"encoding,omitempty"`
	File        uint32   `json:"file,omitempty"`
	FileSym     string   `json:"file_sym,omitempty"`
	Line        uint32   `json:"line,omitempty"`
	LowPC       string   `json:"low_pc,omitempty"`
	HighPC      string   `json:"high_pc,omitempty"`
	External    bool     `json:"external,omitempty"`
	Prototyped  bool     `json:"prototyped,omitempty"`
	Declaration bool     `json:"declaration,omitempty"`
	Artificial  bool     `json:"artificial,omitempty"`
	VarParam    bool     `json:"variable_parameter,omitempty"`
	Value       int64    `json:"value,omitempty"`
	UpperBound  *uint64  `json:"upper_bound,omitempty"`
	UpperRef    *int     `json:"upper_ref,omitempty"`
	Offset      *uint64  `json:"offset,omitempty"`
	OffsetRef   *int     `json:"offset_ref,omitempty"`
	BitOffset   *uint8   `json:"bit_offset,omitempty"`
	BitSize     *uint8   `json:"bit_size,omitempty"`
	Location    *Desc    `json:"location,omitempty"`
	Children    []Entry  `json:"children,omitempty"`
}

// Desc is a location description in one of four shapes.
type Desc struct {
	Kind   string `json:"kind"` // symbol | list | expr | composite
	Symbol string `json:"symbol,omitempty"`
	List   int    `json:"list,omitempty"`
	Expr   *Expr  `json:"expr,omitempty"`
	Exprs  []Expr `json:"exprs,omitempty"`
}

// Expr is one primitive location operation.
type Expr struct {
	Op     string `json:"op"` // regoffset | plus | piece | reg
	Reg    uint32 `json:"reg,omitempty"`
	Offset int64  `json:"offset,omitempty"`
	Value  uint64 `json:"value,omitempty"`
}

// Location is one location list. Relative lists subtract the owning
// unit's low address from every range bound.
type Location struct {
	ID       int     `json:"id"`
	Relative bool    `json:"relative,omitempty"`
	Ranges   []Range `json:"ranges"`
}

// Range is one validity window.
type Range struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
	Desc  Desc   `json:"desc"`
}

// Load reads and decodes a Program, rejecting unknown fields so typos
// in hand-written artifacts fail loudly.
func Load(r io.Reader) (*Program, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var p Program
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode debug info: %w", err)
	}
	if len(p.Units) == 0 {
		return nil, fmt.Errorf("decode debug info: no units")
	}
	return &p, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
