// Package config defines the immutable pipeline Config, its enums, CLI
// flag wiring, and validation, in the spirit of the teacher's flat
// flag.StringVar-based main.go but generalized to the full option surface
// spec.md §4 and §6 describe.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

// AlbumBehavior selects the mover strategy (spec.md §4.7).
type AlbumBehavior string

const (
	AlbumShortcut        AlbumBehavior = "shortcut"
	AlbumReverseShortcut AlbumBehavior = "reverse-shortcut"
	AlbumDuplicateCopy   AlbumBehavior = "duplicate-copy"
	AlbumJSON            AlbumBehavior = "json"
	AlbumNothing         AlbumBehavior = "nothing"
)

func validAlbumBehavior(v string) bool {
	switch AlbumBehavior(v) {
	case AlbumShortcut, AlbumReverseShortcut, AlbumDuplicateCopy, AlbumJSON, AlbumNothing:
		return true
	}
	return false
}

// DateDivision selects the output directory depth under ALL_PHOTOS.
type DateDivision int

const (
	DivideNone DateDivision = 0
	DivideYear DateDivision = 1
	DivideMonth DateDivision = 2
	DivideDay  DateDivision = 3
)

// ExtensionFixMode selects stage-1 behavior.
type ExtensionFixMode string

const (
	ExtFixNone         ExtensionFixMode = "none"
	ExtFixStandard     ExtensionFixMode = "standard"
	ExtFixConservative ExtensionFixMode = "conservative"
	ExtFixSolo         ExtensionFixMode = "solo"
)

func validExtFixMode(v string) bool {
	switch ExtensionFixMode(v) {
	case ExtFixNone, ExtFixStandard, ExtFixConservative, ExtFixSolo:
		return true
	}
	return false
}

// Config is the immutable value every stage receives.
type Config struct {
	InputPath  string
	OutputPath string

	AlbumBehavior    AlbumBehavior
	DateDivision     DateDivision
	ExtensionFixMode ExtensionFixMode

	WriteExif            bool
	SkipExtras           bool
	GuessFromName        bool
	TransformPixelMP     bool
	UpdateCreationTime   bool
	LimitFileSize        bool
	DividePartnerShared  bool

	Verbose bool
	Workers int

	// NoTUI disables the Bubble Tea progress renderer in favor of the
	// plain CLI bar (ambient concern, not part of the core pipeline).
	NoTUI bool

	// explicitFlags records which flag names the user actually passed on
	// the command line (via flag.Visit, not flag.VisitAll), so
	// FileDefaults.Apply can tell "explicitly chosen" apart from
	// "happened to match the zero/default value" for the enum fields
	// that an empty-string check can't disambiguate.
	explicitFlags map[string]bool
}

// flagExplicit reports whether name was set explicitly on the command
// line, as opposed to carrying its flag.BoolVar/StringVar default.
func (c *Config) flagExplicit(name string) bool {
	return c.explicitFlags[name]
}

// MaxHashedFileSize is the 64 MiB ceiling spec.md §5 imposes when
// LimitFileSize is set: larger files are skipped for hashing and EXIF
// writes, kept unique.
const MaxHashedFileSize = 64 << 20

// Exit codes per spec.md §6.
const (
	ExitOK             = 0
	ExitGenericFailure = 1
	ExitCLIParseError  = 2
	ExitMissingArg     = 10
	ExitInputMissing   = 11
	ExitNoMediaFound   = 13
)

// ConfigError reports invalid configuration; the CLI maps it to
// ExitMissingArg.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Validate enforces spec.md §3's Config invariants: no empty paths, known
// enum values (solo is accepted like any other extension-fix mode; no
// further solo-specific check is made), and a worker count of at least 1.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return &ConfigError{Msg: "input path must not be empty"}
	}
	if c.OutputPath == "" {
		return &ConfigError{Msg: "output path must not be empty"}
	}
	if !validAlbumBehavior(string(c.AlbumBehavior)) {
		return &ConfigError{Msg: fmt.Sprintf("unknown album behavior %q", c.AlbumBehavior)}
	}
	if c.DateDivision < DivideNone || c.DateDivision > DivideDay {
		return &ConfigError{Msg: fmt.Sprintf("unknown date division %d", c.DateDivision)}
	}
	if !validExtFixMode(string(c.ExtensionFixMode)) {
		return &ConfigError{Msg: fmt.Sprintf("unknown extension-fix mode %q", c.ExtensionFixMode)}
	}
	if c.Workers < 1 {
		return &ConfigError{Msg: "workers must be at least 1"}
	}
	return nil
}

// defaultWorkers mirrors the teacher's "half the CPUs, responsive laptop"
// heuristic in main.go.
func defaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// ParseFlags builds a Config from the process's command-line flags,
// following the required/optional surface of spec.md §6. It does not call
// os.Exit itself; the caller maps a returned error to the right exit code.
func ParseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("takeout-reorg", flag.ContinueOnError)

	c := &Config{
		AlbumBehavior:    AlbumShortcut,
		DateDivision:     DivideNone,
		ExtensionFixMode: ExtFixStandard,
		WriteExif:        true,
		Workers:          defaultWorkers(),
	}

	fs.StringVar(&c.InputPath, "input", "", "path to the extracted Takeout tree (required)")
	fs.StringVar(&c.OutputPath, "output", "", "path to the organized output library (required)")

	albumBehavior := fs.String("albums", string(c.AlbumBehavior), "shortcut|reverse-shortcut|duplicate-copy|json|nothing")
	dateDivision := fs.Int("divide-to-dates", int(c.DateDivision), "0|1|2|3")
	extFix := fs.String("fix-extensions", string(c.ExtensionFixMode), "none|standard|conservative|solo")

	fs.BoolVar(&c.WriteExif, "write-exif", c.WriteExif, "write recovered date/GPS into EXIF")
	fs.BoolVar(&c.SkipExtras, "skip-extras", c.SkipExtras, "skip -edited/-bearbeitet/... extra variants")
	fs.BoolVar(&c.GuessFromName, "guess-from-name", c.GuessFromName, "guess dates from filename patterns")
	fs.BoolVar(&c.TransformPixelMP, "transform-pixel-mp", c.TransformPixelMP, "handle Pixel motion-photo containers")
	fs.BoolVar(&c.UpdateCreationTime, "update-creation-time", c.UpdateCreationTime, "sync filesystem creation time (platform-gated)")
	fs.BoolVar(&c.LimitFileSize, "limit-filesize", c.LimitFileSize, "skip hashing/EXIF for files over 64 MiB")
	fs.BoolVar(&c.DividePartnerShared, "divide-partner-shared", c.DividePartnerShared, "place partner-shared media under its own branch")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "verbose logging")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel worker count for stages 3/6/7")
	fs.BoolVar(&c.NoTUI, "no-tui", c.NoTUI, "disable the Bubble Tea TUI, use plain CLI output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c.AlbumBehavior = AlbumBehavior(*albumBehavior)
	c.DateDivision = DateDivision(*dateDivision)
	c.ExtensionFixMode = ExtensionFixMode(*extFix)

	c.explicitFlags = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		c.explicitFlags[f.Name] = true
	})

	if c.InputPath == "" || c.OutputPath == "" {
		return nil, &ConfigError{Msg: "both --input and --output are required"}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// CheckInputExists is the InputError half of spec.md §7: the input path
// must exist and be a directory.
func CheckInputExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input path %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %q is not a directory", path)
	}
	return nil
}
