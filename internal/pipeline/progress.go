package pipeline

// StageName identifies one of the eight pipeline stages for progress
// reporting and per-stage timing.
type StageName string

const (
	StageExtensionFix  StageName = "extension-fix"
	StageDiscovery     StageName = "discovery"
	StageDedup         StageName = "dedup"
	StageDateExtract   StageName = "date-extract"
	StageMetadataWrite StageName = "metadata-write"
	StageAlbumResolve  StageName = "album-resolve"
	StageMove          StageName = "move"
	StageCreationTime  StageName = "creation-time"
)

// stageOrder lists the eight stages in the order the driver runs them, so
// the text summary's per-stage sections print deterministically instead
// of following Go's randomized map iteration order.
var stageOrder = []StageName{
	StageExtensionFix,
	StageDiscovery,
	StageDedup,
	StageDateExtract,
	StageMetadataWrite,
	StageAlbumResolve,
	StageMove,
	StageCreationTime,
}

// ProgressEvent reports within-stage progress; either Done or Total may be
// zero when a stage has no meaningful fraction to report (e.g. a fast
// directory scan). CurrentFile mirrors the teacher's truncated
// current-file display, left empty when not applicable.
type ProgressEvent struct {
	Stage       StageName
	Done, Total int
	CurrentFile string
}

// ProgressReporter is the out-of-scope UI collaborator spec.md §1 names:
// the driver reports stage starts, ProgressEvent values, stage ends and
// warnings by calling these methods, and never imports a rendering
// library directly. internal/progresscli and
// internal/tui are the two concrete implementations.
type ProgressReporter interface {
	StageStarted(stage StageName)
	Progress(ev ProgressEvent)
	StageFinished(stage StageName)
	Warn(msg string)
}

// NullReporter discards every event; useful for tests and library callers
// that don't want console output.
type NullReporter struct{}

func (NullReporter) StageStarted(StageName)    {}
func (NullReporter) Progress(ProgressEvent)    {}
func (NullReporter) StageFinished(StageName)   {}
func (NullReporter) Warn(string)               {}
