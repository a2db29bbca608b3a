package config

// Config is the top-level dashboard configuration.
type Config struct {
	Server    Server    `yaml:"server" json:"server"`
	Dashboard Dashboard `yaml:"dashboard" json:"dashboard"`
	Tooltips  Tooltips  `yaml:"tooltips" json:"tooltips"`
	Export    Export    `yaml:"export" json:"export"`
}

type Server struct {
	Port         int    `yaml:"port" json:"port"`
	Metrics      bool   `yaml:"metrics" json:"metrics"`
	ReadTimeout  string `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout" json:"write_timeout"`
}

type Dashboard struct {
	DefaultTab string `yaml:"default_tab" json:"default_tab"`
	Title      string `yaml:"title" json:"title"`
}

// Tooltips selects how the workforce-flow formatter builds its header:
// "compat" keeps the fixed header, "contextual" shows the hovered year.
type Tooltips struct {
	WorkforceHeader string `yaml:"workforce_header" json:"workforce_header"`
}

// Export sizes the PNG/SVG chart previews, in pixels.
type Export struct {
	ImageWidth  int `yaml:"image_width" json:"image_width"`
	ImageHeight int `yaml:"image_height" json:"image_height"`
}
