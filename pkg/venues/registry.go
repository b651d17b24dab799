package venues

import (
	"sort"
	"sync"

	"github.com/tapetrail/tapetrail/pkg/constants"
	"github.com/tapetrail/tapetrail/pkg/errors"
	"github.com/tapetrail/tapetrail/pkg/types"
)

// DefaultThreshold is the alias-acceptance similarity threshold. It is
// empirically tuned, not derived; override it with WithThreshold.
const DefaultThreshold = constants.DefaultVenueThreshold

// Registry is the canonical-venue store for one run. Alias assignment
// depends on registration order, so callers must feed venues in a stable
// order (the engine uses chronological order of first appearance).
// Registration is serialized by a mutex; reads are safe after all
// registrations complete.
type Registry struct {
	mu        sync.Mutex
	threshold float64

	venues  map[string]*types.CanonicalVenue // by venue key
	aliases map[string]string                // normalized alias -> venue key
	order   []string                         // keys in registration order
}

// Option configures a Registry.
type Option func(*Registry)

// WithThreshold overrides the alias-acceptance similarity threshold.
func WithThreshold(threshold float64) Option {
	return func(r *Registry) {
		if threshold > 0 {
			r.threshold = threshold
		}
	}
}

// NewRegistry creates an empty venue registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		threshold: DefaultThreshold,
		venues:    make(map[string]*types.CanonicalVenue),
		aliases:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a raw venue name to its canonical venue, registering a new
// canonical entry when nothing similar exists yet. Location fields fill in
// blanks on the canonical entry; date updates the venue's occurrence
// statistics.
//
// The returned error, when non-nil, is always a *errors.VenueAmbiguousError
// noting that existing candidates scored below the threshold. It is
// informational: a fresh canonical entry has already been registered.
func (r *Registry) Resolve(name, city, state, country string, date types.Date) (*types.CanonicalVenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := Normalize(name)
	if normalized == "" {
		normalized = "unknown-venue"
	}

	// Exact key match.
	key := Key(name)
	if key == "" {
		key = "unknown-venue"
	}
	if v, ok := r.venues[key]; ok {
		r.observe(v, name, city, state, country, date)
		return v, nil
	}

	// Registered alias match.
	if existingKey, ok := r.aliases[normalized]; ok {
		v := r.venues[existingKey]
		r.observe(v, name, city, state, country, date)
		return v, nil
	}

	// Similarity search against canonical display names, in registration
	// order so ties resolve to the earliest-registered entry.
	var best *types.CanonicalVenue
	bestScore := 0.0
	for _, existingKey := range r.order {
		candidate := r.venues[existingKey]
		score := Similarity(name, candidate.Name)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if best != nil && bestScore >= r.threshold {
		r.aliases[normalized] = best.Key
		r.observe(best, name, city, state, country, date)
		return best, nil
	}

	// No acceptable match: register a new canonical entry.
	v := &types.CanonicalVenue{
		Key:     key,
		Name:    name,
		City:    city,
		State:   state,
		Country: country,
	}
	r.venues[key] = v
	r.aliases[normalized] = key
	r.order = append(r.order, key)
	r.observe(v, name, city, state, country, date)

	if best != nil {
		return v, &errors.VenueAmbiguousError{
			Venue:     name,
			BestMatch: best.Name,
			BestScore: bestScore,
			Threshold: r.threshold,
		}
	}
	return v, nil
}

// Lookup finds the canonical venue for a raw name without registering
// anything new.
func (r *Registry) Lookup(name string) (*types.CanonicalVenue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.venues[Key(name)]; ok {
		return v, true
	}
	if key, ok := r.aliases[Normalize(name)]; ok {
		return r.venues[key], true
	}
	return nil, false
}

// Venues returns all canonical venues sorted by key.
func (r *Registry) Venues() []types.CanonicalVenue {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.CanonicalVenue, 0, len(r.venues))
	for _, key := range r.order {
		out = append(out, *r.venues[key])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of canonical venues registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.venues)
}

// observe updates aliases, location, and occurrence statistics for a
// canonical venue. Caller holds the lock.
func (r *Registry) observe(v *types.CanonicalVenue, name, city, state, country string, date types.Date) {
	trimmed := Normalize(name)
	if trimmed != "" && trimmed != Normalize(v.Name) {
		v.Aliases = insertSorted(v.Aliases, name)
	}

	if v.City == "" {
		v.City = city
	}
	if v.State == "" {
		v.State = state
	}
	if v.Country == "" {
		v.Country = country
	}

	v.ShowCount++
	if !date.IsZero() {
		if v.FirstShow.IsZero() || date.Before(v.FirstShow) {
			v.FirstShow = date
		}
		if v.LastShow.IsZero() || date.After(v.LastShow) {
			v.LastShow = date
		}
	}
}

// insertSorted adds a value to a sorted slice, skipping duplicates.
func insertSorted(values []string, value string) []string {
	idx := sort.SearchStrings(values, value)
	if idx < len(values) && values[idx] == value {
		return values
	}
	values = append(values, "")
	copy(values[idx+1:], values[idx:])
	values[idx] = value
	return values
}
