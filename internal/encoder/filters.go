package encoder

import (
	"fmt"
	"strings"
)

// TrimMode selects which ends of the stream get silence-trimmed.
type TrimMode string

// Trim modes for the silenceremove filter chain.
const (
	TrimNone  TrimMode = "none"
	TrimStart TrimMode = "start"
	TrimEnd   TrimMode = "end"
	TrimBoth  TrimMode = "both"
)

// InvalidOptionError reports a trim mode the filter chain cannot express.
type InvalidOptionError struct {
	Option string
	Value  string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s option %q", e.Option, e.Value)
}

// ParseTrimMode maps a silence-mode flag value onto a TrimMode. "all" is a
// legacy alias for "both".
func ParseTrimMode(s string) (TrimMode, error) {
	switch s {
	case "none":
		return TrimNone, nil
	case "start":
		return TrimStart, nil
	case "end":
		return TrimEnd, nil
	case "both", "all":
		return TrimBoth, nil
	default:
		return "", &InvalidOptionError{Option: "silence mode", Value: s}
	}
}

// filterBuilderFunc builds one filter spec from the silence threshold.
type filterBuilderFunc func(threshold string) string

// filterBuilders maps each trim anchor to its builder. TrimBoth composes
// the start and end entries so the chain carries one trim per stream end.
var filterBuilders = map[TrimMode][]filterBuilderFunc{
	TrimNone:  nil,
	TrimStart: {buildStartTrimFilter},
	TrimEnd:   {buildEndTrimFilter},
	TrimBoth:  {buildStartTrimFilter, buildEndTrimFilter},
}

// buildStartTrimFilter removes one run of leading silence at the threshold.
func buildStartTrimFilter(threshold string) string {
	return fmt.Sprintf("silenceremove=start_periods=1:start_threshold=%s", threshold)
}

// buildEndTrimFilter removes one run of trailing silence at the threshold.
func buildEndTrimFilter(threshold string) string {
	return fmt.Sprintf("silenceremove=stop_periods=1:stop_threshold=%s", threshold)
}

// BuildFilterSpec assembles the -af chain for a trim mode. An empty spec
// means no audio filter is applied at all.
func BuildFilterSpec(mode TrimMode, threshold string) (string, error) {
	builders, ok := filterBuilders[mode]
	if !ok {
		return "", &InvalidOptionError{Option: "silence mode", Value: string(mode)}
	}

	specs := make([]string, 0, len(builders))
	for _, build := range builders {
		specs = append(specs, build(threshold))
	}
	return strings.Join(specs, ","), nil
}
