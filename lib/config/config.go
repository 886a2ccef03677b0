package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/shaderexample/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle          = "Shader Example"
	DefaultWidth          = 1200
	DefaultHeight         = 900
	DefaultVertexShader   = "VertexShader.vert"
	DefaultFragmentShader = "FragmentShader.frag"
	DefaultClearColour    = "#00000000"
)

type Config struct {
	Window      *WindowCfg
	Shaders     *ShadersCfg
	ClearColour string `yaml:"clear_colour"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Title  string
	Width  int
	Height int
}

type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used when no file is given. Shader paths
// stay relative to the working directory.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)
	defer func() { UnmarshalBase = "" }()

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.Shaders.Vertex == "" {
		c.Shaders.Vertex = DefaultVertexShader
	}
	if c.Shaders.Fragment == "" {
		c.Shaders.Fragment = DefaultFragmentShader
	}
	if c.ClearColour == "" {
		c.ClearColour = DefaultClearColour
	}
}

func (c *Config) Validate() error {
	if c.Window == nil || c.Shaders == nil {
		return fmt.Errorf("window and shaders sections must be present")
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be set when the api section is present")
	}
	return nil
}

func (c *Config) BGColour() utils.Colour {
	return utils.ColourFromRGBA(utils.ColourParse(c.ClearColour))
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height))

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  vertex:   %s\n", c.Shaders.Vertex))
	b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment))

	b.WriteString(fmt.Sprintf("\nClear colour: %s\n", c.ClearColour))

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi: %s", c.Api.Bind))
		if c.Api.EnableProfiler {
			b.WriteString(" (profiler enabled)")
		}
		b.WriteString("\n")
	}

	return b.String()
}
