// Package policy implements the matchbox memory: a table of per-state
// weight vectors keyed by canonical board encoding, with weighted-random
// and greedy move selection and the reinforcement update applied at game
// end.
package policy

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"menace/game"
)

// Mode selects how a move is drawn from a matchbox.
type Mode int

const (
	// Probabilistic draws proportionally to the weight mass.
	Probabilistic Mode = iota
	// Greedy always takes a maximum-weight cell.
	Greedy
)

// Outcome is a game result from the learner's own perspective.
type Outcome int

const (
	Win Outcome = iota
	Draw
	Loss
)

var (
	// ErrNoLegalMove reports selection over an empty candidate set.
	ErrNoLegalMove = errors.New("no legal move")
	// ErrUnknownState reports an update against a state the store has
	// never seen.
	ErrUnknownState = errors.New("unknown canonical state")
	// ErrMalformedMemory reports an import blob that fails validation.
	// The store keeps its prior contents when import fails.
	ErrMalformedMemory = errors.New("malformed memory blob")
)

// Matchbox is the weight vector for one canonical state. Weights[i] is
// meaningful only for cells empty in that state; occupied cells stay 0.
// Sum caches the total weight and is kept consistent by Update.
type Matchbox struct {
	Weights [9]int
	Sum     int
}

// Store maps canonical state encodings to matchboxes. All mutation goes
// through GetOrCreate, Update, Import and Reset; callers never write
// weight vectors directly. Not safe for concurrent use.
type Store struct {
	cfg   Config
	rng   *rand.Rand
	boxes map[string]*Matchbox
}

// Option configures a Store.
type Option func(*Store)

// WithSeed fixes the random source, for reproducible selection.
func WithSeed(seed uint64) Option {
	return func(s *Store) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewStore creates an empty store using the given learning constants.
func NewStore(cfg Config, options ...Option) *Store {
	s := &Store{
		cfg:   cfg,
		boxes: make(map[string]*Matchbox),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// GetOrCreate returns the matchbox for id, seeding a fresh one on first
// visit. canonical must be the canonical board itself: seeding assigns
// the turn-dependent weight to each of its empty cells and 0 to occupied
// ones, and the turn number is derived from its occupancy.
func (s *Store) GetOrCreate(id string, canonical game.Board) *Matchbox {
	if box, ok := s.boxes[id]; ok {
		return box
	}
	seed := s.cfg.seedWeight(canonical.Turn())
	box := &Matchbox{}
	for i, c := range canonical {
		if c == game.Empty {
			box.Weights[i] = seed
			box.Sum += seed
		}
	}
	s.boxes[id] = box
	return box
}

// SelectMove picks a cell index from legal, which must hold canonical
// cell indices. In Probabilistic mode the draw is proportional to the
// weights restricted to legal, falling back to a uniform pick when that
// mass is zero. In Greedy mode the maximum-weight cell wins, ties broken
// uniformly at random.
func (s *Store) SelectMove(box *Matchbox, legal []int, mode Mode) (int, error) {
	if len(legal) == 0 {
		return 0, ErrNoLegalMove
	}
	if mode == Greedy {
		return s.selectGreedy(box, legal), nil
	}
	return s.selectWeighted(box, legal), nil
}

func (s *Store) selectWeighted(box *Matchbox, legal []int) int {
	total := 0
	for _, i := range legal {
		total += box.Weights[i]
	}
	if total == 0 {
		return legal[s.rng.Intn(len(legal))]
	}
	target := s.rng.Intn(total)
	for _, i := range legal {
		target -= box.Weights[i]
		if target < 0 {
			return i
		}
	}
	// Unreachable: the walk above covers the full weight mass.
	return legal[len(legal)-1]
}

func (s *Store) selectGreedy(box *Matchbox, legal []int) int {
	best := -1
	var ties []int
	for _, i := range legal {
		switch w := box.Weights[i]; {
		case w > best:
			best = w
			ties = ties[:0]
			ties = append(ties, i)
		case w == best:
			ties = append(ties, i)
		}
	}
	return ties[s.rng.Intn(len(ties))]
}

// Update applies the reinforcement rule to one (state, cell) pair. Wins
// and draws add their reward; losses subtract the penalty saturating at
// zero. The cached sum moves by the delta actually applied.
func (s *Store) Update(id string, cell int, outcome Outcome) error {
	box, ok := s.boxes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, id)
	}
	if cell < 0 || cell >= len(box.Weights) {
		return fmt.Errorf("cell index %d out of range", cell)
	}
	if id[cell] != '_' {
		return fmt.Errorf("cell %d is occupied in state %q", cell, id)
	}
	var delta int
	switch outcome {
	case Win:
		delta = s.cfg.WinReward
	case Draw:
		delta = s.cfg.DrawReward
	case Loss:
		delta = -s.cfg.LossPenalty
		if box.Weights[cell]+delta < 0 {
			delta = -box.Weights[cell]
		}
	default:
		return fmt.Errorf("unknown outcome %d", outcome)
	}
	box.Weights[cell] += delta
	box.Sum += delta
	return nil
}

// Size returns the number of canonical states held.
func (s *Store) Size() int {
	return len(s.boxes)
}

// Reset drops every matchbox.
func (s *Store) Reset() {
	s.boxes = make(map[string]*Matchbox)
}

// memoryRecord is the export wire format for one matchbox. WeightSum is
// redundant but makes reloads cheap; importers recompute on mismatch.
type memoryRecord struct {
	State     string `json:"state"`
	Weights   []int  `json:"weights"`
	WeightSum int    `json:"weight_sum"`
}

// Export serializes the full memory, ordered by state for stable output.
func (s *Store) Export() (string, error) {
	records := make([]memoryRecord, 0, len(s.boxes))
	for id, box := range s.boxes {
		records = append(records, memoryRecord{
			State:     id,
			Weights:   append([]int(nil), box.Weights[:]...),
			WeightSum: box.Sum,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].State < records[j].State })
	data, err := json.Marshal(records)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode memory")
	}
	return string(data), nil
}

// Import replaces the memory with the contents of blob. On any
// validation failure the store is left untouched. A weight_sum that
// disagrees with the weights is recomputed rather than rejected.
func (s *Store) Import(blob string) error {
	var records []memoryRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return errors.Wrapf(ErrMalformedMemory, "decode: %v", err)
	}
	boxes := make(map[string]*Matchbox, len(records))
	for _, r := range records {
		box, err := r.validate()
		if err != nil {
			return errors.Wrapf(ErrMalformedMemory, "state %q: %v", r.State, err)
		}
		if _, ok := boxes[r.State]; ok {
			return errors.Wrapf(ErrMalformedMemory, "duplicate state %q", r.State)
		}
		boxes[r.State] = box
	}
	s.boxes = boxes
	return nil
}

func (r memoryRecord) validate() (*Matchbox, error) {
	if _, err := game.Decode(r.State); err != nil {
		return nil, err
	}
	if len(r.Weights) != 9 {
		return nil, fmt.Errorf("expected 9 weights, got %d", len(r.Weights))
	}
	box := &Matchbox{}
	for i, w := range r.Weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %d at cell %d", w, i)
		}
		if w != 0 && r.State[i] != '_' {
			return nil, fmt.Errorf("occupied cell %d has weight %d", i, w)
		}
		box.Weights[i] = w
		box.Sum += w
	}
	// r.WeightSum is advisory: box.Sum recomputed above wins.
	return box, nil
}
