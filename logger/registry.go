package logger

import "github.com/mattn/go-runewidth"

// Registry holds the ordered level set and the active threshold.
// It is not safe for concurrent use on its own; Logger serialises access.
type Registry struct {
	levels       []Level
	byName       map[string]Level
	maxNameWidth int
	threshold    string
}

// NewRegistry returns a registry holding levels, with the threshold set to
// the last (least severe) entry.
func NewRegistry(levels []Level) *Registry {
	r := &Registry{}
	r.SetLevels(levels)
	r.threshold = r.lastName()
	return r
}

// SetLevels replaces the level set. Levels are given highest priority first
// and ranked by position. When a name repeats, the first occurrence is kept
// and later ones are dropped from lookup. An empty set is accepted; every
// lookup then fails until the registry is repopulated.
//
// The threshold is left as is, even if it no longer names a level.
func (r *Registry) SetLevels(levels []Level) {
	r.levels = make([]Level, len(levels))
	r.byName = make(map[string]Level, len(levels))

	longest := 0
	for i, level := range levels {
		level.position = i + 1
		r.levels[i] = level

		if w := runewidth.StringWidth(level.Name); w > longest {
			longest = w
		}
		if _, ok := r.byName[level.Name]; !ok {
			r.byName[level.Name] = level
		}
	}
	r.maxNameWidth = longest + 2
}

// SetThreshold makes name the least severe level that is still emitted.
func (r *Registry) SetThreshold(name string) error {
	if _, ok := r.byName[name]; !ok {
		return &UnknownLevelError{Name: name}
	}
	r.threshold = name
	return nil
}

// Threshold returns the name of the active threshold level.
func (r *Registry) Threshold() string {
	return r.threshold
}

// Resolve looks a level up by name.
func (r *Registry) Resolve(name string) (Level, error) {
	level, ok := r.byName[name]
	if !ok {
		return Level{}, &UnknownLevelError{Name: name}
	}
	return level, nil
}

// ShouldEmit reports whether a call at level name passes the threshold.
// Equal rank always emits.
func (r *Registry) ShouldEmit(name string) (bool, error) {
	level, err := r.Resolve(name)
	if err != nil {
		return false, err
	}
	threshold, err := r.Resolve(r.threshold)
	if err != nil {
		return false, err
	}
	return level.Rank() <= threshold.Rank(), nil
}

// Levels returns a copy of the registered levels in rank order, duplicates
// included.
func (r *Registry) Levels() []Level {
	out := make([]Level, len(r.levels))
	copy(out, r.levels)
	return out
}

// Len returns the number of distinct level names.
func (r *Registry) Len() int {
	return len(r.byName)
}

// MaxNameWidth is the padded width of the level field: the widest name plus 2.
func (r *Registry) MaxNameWidth() int {
	return r.maxNameWidth
}

func (r *Registry) lastName() string {
	if len(r.levels) == 0 {
		return ""
	}
	return r.levels[len(r.levels)-1].Name
}
