package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileDefaults is the persisted subset of Config a user can pre-seed via
// ~/.takeout-reorg.yaml, mirroring the teacher's ConfigFile/config_setup.go.
// This file holds the persisted shape, the load/save mechanics, and the
// interactive setup wizard (RunSetupWizard) that writes it.
type FileDefaults struct {
	InputPath        string `yaml:"input_path"`
	OutputPath       string `yaml:"output_path"`
	AlbumBehavior    string `yaml:"album_behavior"`
	ExtensionFixMode string `yaml:"fix_extensions"`
	Workers          int    `yaml:"workers"`
}

// DefaultsPath returns the path to the persisted defaults file.
func DefaultsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".takeout-reorg.yaml"
	}
	return filepath.Join(home, ".takeout-reorg.yaml")
}

// LoadDefaults reads persisted defaults, if any. A missing file is not an
// error; it just means no overrides exist yet.
func LoadDefaults() (*FileDefaults, error) {
	data, err := os.ReadFile(DefaultsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &FileDefaults{}, nil
		}
		return nil, err
	}
	var fd FileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, err
	}
	return &fd, nil
}

// SaveDefaults persists the given defaults.
func SaveDefaults(fd *FileDefaults) error {
	data, err := yaml.Marshal(fd)
	if err != nil {
		return err
	}
	return os.WriteFile(DefaultsPath(), data, 0644)
}

// ApplyDefaults fills Config fields from persisted defaults, letting
// explicit CLI flags always win. InputPath/OutputPath disambiguate via
// emptiness, since there is no non-empty "default" value a flag could
// coincidentally match. AlbumBehavior and ExtensionFixMode can't: both
// carry a non-empty flag.StringVar default (shortcut/standard), so a
// persisted value would silently win over a user who explicitly passed
// the flag with a value equal to that default — Apply
// consults Config.flagExplicit, populated from flag.Visit during
// ParseFlags, to tell "the user typed --albums shortcut" apart from
// "the user didn't pass --albums at all".
func (fd *FileDefaults) Apply(c *Config) {
	if c.InputPath == "" {
		c.InputPath = fd.InputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = fd.OutputPath
	}
	if !c.flagExplicit("albums") && fd.AlbumBehavior != "" && validAlbumBehavior(fd.AlbumBehavior) {
		c.AlbumBehavior = AlbumBehavior(fd.AlbumBehavior)
	}
	if !c.flagExplicit("fix-extensions") && fd.ExtensionFixMode != "" && validExtFixMode(fd.ExtensionFixMode) {
		c.ExtensionFixMode = ExtensionFixMode(fd.ExtensionFixMode)
	}
	if !c.flagExplicit("workers") && fd.Workers > 0 {
		c.Workers = fd.Workers
	}
}

// RunSetupWizard interactively builds and saves a FileDefaults, the direct
// generalization of the teacher's runSetupWizard in config_setup.go. It is
// the concrete Prompter collaborator spec.md §1 treats as out of core
// scope; the pipeline never calls this directly, only cmd/takeout-reorg
// does, behind --setup.
func RunSetupWizard(stdin *os.File, stdout *os.File) (*FileDefaults, error) {
	reader := bufio.NewReader(stdin)
	fd := &FileDefaults{}

	fmt.Fprintln(stdout, "Takeout Reorganizer — first-time setup")
	fmt.Fprintln(stdout, "Configuration will be saved to:", DefaultsPath())
	fmt.Fprintln(stdout)

	fmt.Fprint(stdout, "Input Takeout directory: ")
	fd.InputPath = readLine(reader)

	fmt.Fprint(stdout, "Output library directory: ")
	fd.OutputPath = readLine(reader)

	fmt.Fprint(stdout, "Album behavior [shortcut]: ")
	if v := readLine(reader); v != "" {
		fd.AlbumBehavior = v
	} else {
		fd.AlbumBehavior = string(AlbumShortcut)
	}

	fmt.Fprint(stdout, "Extension-fix mode [standard]: ")
	if v := readLine(reader); v != "" {
		fd.ExtensionFixMode = v
	} else {
		fd.ExtensionFixMode = string(ExtFixStandard)
	}

	fmt.Fprintf(stdout, "Workers [%d]: ", defaultWorkers())
	if v := readLine(reader); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fd.Workers = n
		}
	}
	if fd.Workers == 0 {
		fd.Workers = defaultWorkers()
	}

	if err := SaveDefaults(fd); err != nil {
		return nil, fmt.Errorf("save setup defaults: %w", err)
	}
	fmt.Fprintln(stdout, "Saved to", DefaultsPath())
	return fd, nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
