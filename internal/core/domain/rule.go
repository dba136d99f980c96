package domain

// Action declares what a rule does to the paths it covers.
type Action uint8

const (
	// ActionWatch marks a path whose entries are normalized on change.
	ActionWatch Action = iota
	// ActionIgnore exempts a path from an ancestor watch rule.
	ActionIgnore
)

// String returns the configuration spelling of the action.
func (a Action) String() string {
	if a == ActionIgnore {
		return "ignore"
	}
	return "watch"
}

// Toggle returns the opposite action.
func (a Action) Toggle() Action {
	if a == ActionWatch {
		return ActionIgnore
	}
	return ActionWatch
}

// Mode declares how far below the rule's directory a rule reaches.
type Mode uint8

const (
	// ModeRecursive covers the directory and everything below it.
	ModeRecursive Mode = iota
	// ModeChildren covers only the directory's direct children.
	ModeChildren
)

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	if m == ModeChildren {
		return "children"
	}
	return "recursive"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeRecursive {
		return ModeChildren
	}
	return ModeRecursive
}

// Status classifies a rule after validation and status resolution.
type Status uint8

const (
	// StatusActive marks a rule that is currently in effect.
	StatusActive Status = iota
	// StatusRedundant marks a rule whose effect another active rule already provides.
	StatusRedundant
	// StatusNotFound marks a rule whose path does not resolve.
	StatusNotFound
	// StatusNotADirectory marks a rule whose path resolves to a non-directory.
	StatusNotADirectory
	// StatusPermissionDenied marks a rule whose path cannot be inspected.
	StatusPermissionDenied
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusRedundant:
		return "Redundant"
	case StatusNotADirectory:
		return "Not a Dir"
	case StatusPermissionDenied:
		return "No Access"
	default:
		return "Not Found"
	}
}

// Symbol returns the single-character marker used in listings.
func (s Status) Symbol() string {
	switch s {
	case StatusActive:
		return "✓"
	case StatusRedundant:
		return "~"
	default:
		return "✗"
	}
}

// NoRef marks an empty positional reference between rules.
const NoRef = -1

// Rule is one user-declared watch or ignore declaration. Raw holds the path
// exactly as the user typed it; Canonical is set by validation and stays
// empty while the rule is invalid. RedundantOf and Overrides are positions
// in the owning rule sequence, NoRef when absent.
type Rule struct {
	Raw         string
	Action      Action
	Mode        Mode
	Canonical   string
	Status      Status
	RedundantOf int
	Overrides   int
}

// NewRule creates an unvalidated rule for the given raw path.
func NewRule(raw string, action Action, mode Mode) Rule {
	return Rule{
		Raw:         raw,
		Action:      action,
		Mode:        mode,
		Status:      StatusNotFound,
		RedundantOf: NoRef,
		Overrides:   NoRef,
	}
}

// RuleSet is an ordered sequence of rules. Order is semantically significant
// only as a deterministic tie-break during status resolution and for the
// positional references; reordering or removing rules invalidates all
// references and requires full recomputation.
type RuleSet []Rule

// ActiveEntry is the immutable projection of an Active rule that the daemon
// consumes. It carries no back-reference to its source rule and is never
// live-updated while the daemon runs.
type ActiveEntry struct {
	Canonical string
	Action    Action
	Mode      Mode
}
