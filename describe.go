package safeunion

import "github.com/rawbytedev/safeunion/endian"

// Layout is a printable description of a schema.
type Layout struct {
	Name         string              `yaml:"name,omitempty"`
	Order        string              `yaml:"order"`
	Native       string              `yaml:"native"`
	Swaps        bool                `yaml:"swaps"`
	Mode         string              `yaml:"mode"`
	Size         int                 `yaml:"size"`
	Alternatives []AlternativeLayout `yaml:"alternatives"`
}

// AlternativeLayout describes one alternative and where it is swapped.
type AlternativeLayout struct {
	Index  int    `yaml:"index"`
	Type   string `yaml:"type"`
	Class  string `yaml:"class"`
	Size   int    `yaml:"size"`
	Unit   int    `yaml:"unit"`
	Fields int    `yaml:"fields"`
	// Stored is the byte order the slot holds this alternative in.
	Stored string `yaml:"stored"`
}

// Describe returns the schema layout.
func (s *Schema) Describe() Layout {
	l := Layout{
		Name:         s.name,
		Order:        s.order.String(),
		Native:       endian.Native().String(),
		Swaps:        s.swaps,
		Mode:         s.mode.String(),
		Size:         s.size,
		Alternatives: make([]AlternativeLayout, len(s.alts)),
	}
	for i, a := range s.alts {
		stored := endian.Native()
		if a.Composite() {
			stored = s.order
		}
		l.Alternatives[i] = AlternativeLayout{
			Index:  i,
			Type:   a.Type.String(),
			Class:  a.Class.String(),
			Size:   a.Size,
			Unit:   a.Unit,
			Fields: a.Fields,
			Stored: stored.String(),
		}
	}
	return l
}
