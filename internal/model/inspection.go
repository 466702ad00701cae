package model

// SegmentReport describes one collected segment for diagnostics.
type SegmentReport struct {
	Name    SegmentName `yaml:"name"`
	Present bool        `yaml:"present"`
	Width   int         `yaml:"width"`
	Text    string      `yaml:"text"`
}

// Measure describes how a row was fitted into the terminal width. All values
// are in terminal columns.
type Measure struct {
	Width      int `yaml:"width"`
	Content    int `yaml:"content"`
	Separators int `yaml:"separators"`
	Decoration int `yaml:"decoration"`
	Fill       int `yaml:"fill"`
}

// Inspection is a snapshot of everything a left prompt render collects.
type Inspection struct {
	WorkingDir Path            `yaml:"working_dir"`
	Root       Path            `yaml:"root,omitempty"`
	Display    string          `yaml:"display"`
	Segments   []SegmentReport `yaml:"segments"`
	Layout     Measure         `yaml:"layout"`
}
