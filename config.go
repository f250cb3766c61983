package minami

import (
	"fmt"
	"os"

	"github.com/edwellbrook/minami/internal/yamlutil"
)

// Conf is the YAML form of the host configuration file. Its shape
// mirrors the host's nested layout; Options flattens it for the
// publisher.
type Conf struct {
	Destination string        `yaml:"destination"`
	Encoding    string        `yaml:"encoding"`
	Readme      string        `yaml:"readme"`
	MainPage    string        `yaml:"mainPageTitle"`
	Templates   TemplatesConf `yaml:"templates"`
}

// TemplatesConf groups template behavior settings.
type TemplatesConf struct {
	CleverLinks    bool        `yaml:"cleverLinks"`
	MonospaceLinks bool        `yaml:"monospaceLinks"`
	Default        DefaultConf `yaml:"default"`
}

// DefaultConf holds the default-template settings block.
type DefaultConf struct {
	OutputSourceFiles *bool           `yaml:"outputSourceFiles"`
	SuppressReturns   bool            `yaml:"suppressReturns"`
	UseLongnameInNav  bool            `yaml:"useLongnameInNav"`
	NavDepth          int             `yaml:"navDepth"`
	LayoutFile        string          `yaml:"layoutFile"`
	ThemeDir          string          `yaml:"themeDir"`
	StaticFiles       StaticFilesConf `yaml:"staticFiles"`
}

// StaticFilesConf lists user static-file include paths and filters.
type StaticFilesConf struct {
	Include        []string `yaml:"include"`
	IncludePattern string   `yaml:"includePattern"`
	ExcludePattern string   `yaml:"excludePattern"`
}

// LoadConf reads and parses a YAML configuration file.
func LoadConf(path string) (*Conf, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied conf path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfNotFound, path)
		}
		return nil, fmt.Errorf("reading conf: %w", err)
	}

	var conf Conf
	if err := yamlutil.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfParse, err)
	}
	return &conf, nil
}

// Options flattens the conf into publisher options. Source-file output
// defaults to on when the conf leaves it unset.
func (c *Conf) Options() Options {
	outputSource := true
	if c.Templates.Default.OutputSourceFiles != nil {
		outputSource = *c.Templates.Default.OutputSourceFiles
	}
	return Options{
		Destination:       c.Destination,
		Encoding:          c.Encoding,
		Readme:            c.Readme,
		MainPageTitle:     c.MainPage,
		OutputSourceFiles: outputSource,
		SuppressReturns:   c.Templates.Default.SuppressReturns,
		UseLongnameInNav:  c.Templates.Default.UseLongnameInNav,
		NavDepth:          c.Templates.Default.NavDepth,
		LayoutFile:        c.Templates.Default.LayoutFile,
		ThemeDir:          c.Templates.Default.ThemeDir,
		StaticFilePaths:   c.Templates.Default.StaticFiles.Include,
		StaticFileInclude: c.Templates.Default.StaticFiles.IncludePattern,
		StaticFileExclude: c.Templates.Default.StaticFiles.ExcludePattern,
		MonospaceLinks:    c.Templates.MonospaceLinks,
		CleverLinks:       c.Templates.CleverLinks,
	}
}
