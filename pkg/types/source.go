package types

import "strings"

// SourceType is the coarse provenance tag for a recording. Broadcast and
// board sources outrank audience tapes when selecting a best recording.
type SourceType string

// Known source types.
const (
	SourceFM      SourceType = "FM"
	SourceSBD     SourceType = "SBD"
	SourceMatrix  SourceType = "MATRIX"
	SourceAUD     SourceType = "AUD"
	SourceUnknown SourceType = "UNKNOWN"
)

// String returns the source type tag.
func (s SourceType) String() string { return string(s) }

// Rank returns the quality rank of the source type; higher is better.
func (s SourceType) Rank() int {
	switch s {
	case SourceFM:
		return 4
	case SourceSBD:
		return 3
	case SourceMatrix:
		return 2
	case SourceAUD:
		return 1
	default:
		return 0
	}
}

// ParseSourceType maps a raw tag onto the known vocabulary. Unrecognized
// tags become SourceUnknown.
func ParseSourceType(raw string) SourceType {
	switch SourceType(strings.ToUpper(strings.TrimSpace(raw))) {
	case SourceFM:
		return SourceFM
	case SourceSBD:
		return SourceSBD
	case SourceMatrix:
		return SourceMatrix
	case SourceAUD:
		return SourceAUD
	default:
		return SourceUnknown
	}
}

// DetectSourceType infers a source type from a recording's identifier,
// title, and description text. Collected metadata frequently tags
// recordings UNKNOWN even when the identifier names the lineage, so the
// engine runs detection before ranking recordings.
func DetectSourceType(rec *RawRecording) SourceType {
	if rec.SourceType != "" && rec.SourceType != SourceUnknown {
		return ParseSourceType(string(rec.SourceType))
	}

	text := strings.ToUpper(rec.ID + " " + rec.Title + " " + rec.Description)

	switch {
	case strings.Contains(text, "SBD") || strings.Contains(text, "SOUNDBOARD"):
		return SourceSBD
	case strings.Contains(text, "MATRIX"):
		return SourceMatrix
	case strings.Contains(text, "AUD") || strings.Contains(text, "AUDIENCE"):
		return SourceAUD
	case strings.Contains(text, "FM") || strings.Contains(text, "BROADCAST"):
		return SourceFM
	default:
		return SourceUnknown
	}
}
