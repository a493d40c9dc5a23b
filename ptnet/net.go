// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ptnet

import "fmt"

// ArcDir is the direction of an arc: from a place to a transition
// (precondition) or from a transition to a place (post-effect).
type ArcDir uint8

const (
	// PlaceToTransition is a precondition arc: firing the transition
	// requires the place to hold at least the arc's weight in tokens.
	PlaceToTransition ArcDir = iota
	// TransitionToPlace is a post-effect arc: firing the transition adds
	// the arc's weight in tokens to the place.
	TransitionToPlace
)

// Place is a named place of a PT net. Colored is true when the place's
// initial marking was a colored-net sentinel rather than a plain integer;
// spec.md section 1 treats colored markings as a non-goal beyond this
// sentinel, and Initial is always 0 when Colored is true.
type Place struct {
	Name    string
	Initial int64
	Colored bool
	// Feeds lists, in the order they were added, the indices of the
	// transitions that have this place as a precondition.
	Feeds []int
	// FedBy lists the indices of the transitions that have this place as a
	// post-effect.
	FedBy []int
}

// Transition is a named transition of a PT net. Pre and Post map place
// index to arc weight; a place absent from Pre has no precondition on this
// transition (equivalent to weight 0), and likewise for Post.
type Transition struct {
	Name string
	Pre  map[int]int64
	Post map[int]int64
}

// Net is a Place/Transition net: places and transitions indexed by a dense
// nonnegative integer, with a bidirectional name<->index map, as described
// in spec.md section 3.
type Net struct {
	Name        string
	Places      []Place
	Transitions []Transition

	placeIndex map[string]int
	transIndex map[string]int
}

// NewNet returns an empty net with the given name.
func NewNet(name string) *Net {
	return &Net{
		Name:       name,
		placeIndex: map[string]int{},
		transIndex: map[string]int{},
	}
}

// AddPlace adds a place and returns its index. It is an error to reuse a
// place name.
func (net *Net) AddPlace(name string, initial int64, colored bool) (int, error) {
	if _, ok := net.placeIndex[name]; ok {
		return 0, fmt.Errorf("ptnet: duplicate place name %q", name)
	}
	if colored {
		initial = 0
	}
	idx := len(net.Places)
	net.Places = append(net.Places, Place{Name: name, Initial: initial, Colored: colored})
	net.placeIndex[name] = idx
	return idx, nil
}

// AddTransition adds a transition and returns its index. It is an error to
// reuse a transition name.
func (net *Net) AddTransition(name string) (int, error) {
	if _, ok := net.transIndex[name]; ok {
		return 0, fmt.Errorf("ptnet: duplicate transition name %q", name)
	}
	idx := len(net.Transitions)
	net.Transitions = append(net.Transitions, Transition{Name: name, Pre: map[int]int64{}, Post: map[int]int64{}})
	net.transIndex[name] = idx
	return idx, nil
}

// AddArc adds a weighted arc between place p and transition t in direction
// dir, merging with any existing arc weight between the same pair. Weights
// must be strictly positive; arcs without an explicit weight default to 1
// at the caller (spec.md section 6).
func (net *Net) AddArc(p, t int, weight int64, dir ArcDir) error {
	if p < 0 || p >= len(net.Places) {
		return fmt.Errorf("ptnet: place index %d out of range", p)
	}
	if t < 0 || t >= len(net.Transitions) {
		return fmt.Errorf("ptnet: transition index %d out of range", t)
	}
	if weight <= 0 {
		return fmt.Errorf("ptnet: arc weight must be positive, got %d", weight)
	}
	switch dir {
	case PlaceToTransition:
		if _, ok := net.Transitions[t].Pre[p]; !ok {
			net.Places[p].Feeds = append(net.Places[p].Feeds, t)
		}
		net.Transitions[t].Pre[p] += weight
	case TransitionToPlace:
		if _, ok := net.Transitions[t].Post[p]; !ok {
			net.Places[p].FedBy = append(net.Places[p].FedBy, t)
		}
		net.Transitions[t].Post[p] += weight
	default:
		return fmt.Errorf("ptnet: unknown arc direction %d", dir)
	}
	return nil
}

// PlaceIndex returns the index of the place with the given name.
func (net *Net) PlaceIndex(name string) (int, bool) {
	idx, ok := net.placeIndex[name]
	return idx, ok
}

// TransitionIndex returns the index of the transition with the given name.
func (net *Net) TransitionIndex(name string) (int, bool) {
	idx, ok := net.transIndex[name]
	return idx, ok
}

// PlaceName returns the name of place p.
func (net *Net) PlaceName(p int) string { return net.Places[p].Name }

// TransitionName returns the name of transition t.
func (net *Net) TransitionName(t int) string { return net.Transitions[t].Name }

// Initial returns the net's initial Config, built from each place's
// Initial field (a colored place's initial marking is always 0).
func (net *Net) Initial() Config {
	cfg := make(Config, len(net.Places))
	for i, pl := range net.Places {
		cfg[i] = pl.Initial
	}
	return cfg
}
