package debuginfo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anithag/CompCert/internal/dwarf"
)

const sampleArtifact = `{
  "triple": "x86_32-linux",
  "units": [
    {
      "name": "main.c",
      "comp_dir": "/work",
      "low_pc": "Ltext0",
      "high_pc": "Letext0",
      "line_start": "Lline0",
      "entries": [
        {"id": 1, "tag": "base_type", "name": "int", "byte_size": 4, "encoding": 5},
        {
          "id": 2, "tag": "subprogram", "name": "main",
          "prototyped": true, "external": true, "type": 1,
          "low_pc": "main", "high_pc": "Lmain_end",
          "children": [
            {
              "id": 3, "tag": "formal_parameter", "name": "argc", "type": 1,
              "location": {"kind": "list", "list": 1}
            }
          ]
        },
        {
          "id": 4, "tag": "variable", "name": "counter", "type": 1,
          "external": true,
          "location": {"kind": "symbol", "symbol": "counter"}
        }
      ],
      "locations": [
        {
          "id": 1, "relative": true,
          "ranges": [
            {
              "begin": "Largc0", "end": "Largc1",
              "desc": {"kind": "expr", "expr": {"op": "regoffset", "reg": 5, "offset": 8}}
            }
          ]
        }
      ]
    }
  ]
}`

func TestLoadConvertEmit(t *testing.T) {
	prog, err := Load(strings.NewReader(sampleArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	units, err := BuildUnits(prog, "cc 0.3.1 (x86_32-linux)")
	if err != nil {
		t.Fatalf("BuildUnits: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("units = %d, want 1", len(units))
	}

	var buf bytes.Buffer
	e := dwarf.New(dwarf.DefaultTarget(), &buf)
	if err := e.EmitProgram(units[0].Root, units[0].Locations); err != nil {
		t.Fatalf("EmitProgram: %v", err)
	}
	out := buf.String()

	for _, w := range []string{
		"\t.asciz\t\"main.c\"\n",
		"\t.asciz\t\"/work\"\n",
		"\t.asciz\t\"cc 0.3.1 (x86_32-linux)\"\n",
		"\t.asciz\t\"argc\"\n",
		"\t.4byte\tcounter\n",
		"\t.4byte\tLargc0-Ltext0\n",
		"\t.4byte\tLargc1-Ltext0\n",
		"\t.section\t.debug_loc\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestBuildUnitsRootIDsDistinct(t *testing.T) {
	prog := &Program{Units: []Unit{
		{Name: "a.c", Entries: []Entry{{ID: 1, Tag: "base_type", ByteSize: u32p(4)}}},
		{Name: "b.c", Entries: []Entry{{ID: 1, Tag: "base_type", ByteSize: u32p(4)}}},
	}}
	units, err := BuildUnits(prog, "p")
	if err != nil {
		t.Fatalf("BuildUnits: %v", err)
	}
	a, b := units[0].Root.ID, units[1].Root.ID
	if a == b {
		t.Fatalf("root ids collide: %d", a)
	}
	if a >= 1 || b >= 1 {
		t.Fatalf("root ids %d, %d overlap the front-end id space", a, b)
	}
}

func TestUnknownTagRejected(t *testing.T) {
	prog := &Program{Units: []Unit{{
		Name:    "a.c",
		Entries: []Entry{{ID: 1, Tag: "mystery_type"}},
	}}}
	if _, err := BuildUnits(prog, "p"); err == nil ||
		!strings.Contains(err.Error(), "unknown tag") {
		t.Fatalf("err = %v, want unknown tag", err)
	}
}

func TestMissingRequiredFieldRejected(t *testing.T) {
	prog := &Program{Units: []Unit{{
		Name:    "a.c",
		Entries: []Entry{{ID: 1, Tag: "pointer_type"}},
	}}}
	if _, err := BuildUnits(prog, "p"); err == nil ||
		!strings.Contains(err.Error(), "needs type") {
		t.Fatalf("err = %v, want missing type", err)
	}
}

func TestListReferenceInsideListRejected(t *testing.T) {
	prog := &Program{Units: []Unit{{
		Name: "a.c",
		Entries: []Entry{
			{ID: 1, Tag: "base_type", ByteSize: u32p(4)},
		},
		Locations: []Location{{
			ID: 1,
			Ranges: []Range{{
				Begin: "b", End: "e",
				Desc: Desc{Kind: "list", List: 2},
			}},
		}},
	}}}
	if _, err := BuildUnits(prog, "p"); err == nil ||
		!strings.Contains(err.Error(), "not allowed inside a list") {
		t.Fatalf("err = %v, want nested list rejection", err)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	in := `{"units": [{"name": "a.c", "entries": [], "surprise": 1}]}`
	if _, err := Load(strings.NewReader(in)); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestLoadRejectsEmptyProgram(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"units": []}`)); err == nil {
		t.Fatal("empty program accepted")
	}
}

func u32p(v uint32) *uint32 { return &v }
