// Package workload drives a Map with a random sequence of operations and
// checks every result against a plain Go map used as the reference model.
// The tree invariants are verified after every step.
package workload

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/ajwerner/avlmap"
)

// Op is a kind of operation applied to the Map.
type Op int

const (
	OpInsert Op = iota
	OpIndex
	OpErase
	OpEraseAt
	OpFind
	OpClone
	OpClear
	numOps
)

var opNames = [...]string{
	OpInsert:  "insert",
	OpIndex:   "index",
	OpErase:   "erase",
	OpEraseAt: "erase-at",
	OpFind:    "find",
	OpClone:   "clone",
	OpClear:   "clear",
}

func (o Op) String() string {
	if o < 0 || o >= numOps {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Config describes a workload.
type Config struct {
	Seed int64
	// Ops is the number of operations to run.
	Ops int
	// KeySpace bounds the keys to [0, KeySpace).
	KeySpace int
	// ClearEvery is the inverse probability of a clear; 0 disables clearing.
	ClearEvery int
}

// Stats summarizes a completed workload.
type Stats struct {
	Counts    [numOps]int
	MaxLen    int
	MaxHeight int
	FinalLen  int
}

func (s Stats) Count(op Op) int { return s.Counts[op] }

// Run executes the workload described by cfg. The first divergence from the
// reference model or broken invariant is returned as an error.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	if cfg.Ops < 0 || cfg.KeySpace <= 0 {
		return Stats{}, errors.Newf("invalid workload: %d ops over %d keys", cfg.Ops, cfg.KeySpace)
	}
	r := runner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		m:   avlmap.New[int, int](),
		ref: make(map[int]int),
	}
	for i := 0; i < cfg.Ops; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return r.stats, err
			}
		}
		op := r.pick()
		if err := r.step(op); err != nil {
			return r.stats, errors.Wrapf(err, "step %d (%s)", i, op)
		}
		if err := r.m.Verify(); err != nil {
			return r.stats, errors.Wrapf(err, "step %d (%s)", i, op)
		}
		if r.m.Len() != len(r.ref) {
			return r.stats, errors.Newf("step %d (%s): length %d, expected %d", i, op, r.m.Len(), len(r.ref))
		}
		r.stats.Counts[op]++
		if l := r.m.Len(); l > r.stats.MaxLen {
			r.stats.MaxLen = l
		}
		if h := r.m.Height(); h > r.stats.MaxHeight {
			r.stats.MaxHeight = h
		}
	}
	r.stats.FinalLen = r.m.Len()
	return r.stats, CheckOrder(r.m, r.ref)
}

type runner struct {
	cfg   Config
	rng   *rand.Rand
	m     *avlmap.Map[int, int]
	ref   map[int]int
	stats Stats
}

func (r *runner) pick() Op {
	if r.cfg.ClearEvery > 0 && r.rng.Intn(r.cfg.ClearEvery) == 0 {
		return OpClear
	}
	switch n := r.rng.Intn(100); {
	case n < 40:
		return OpInsert
	case n < 55:
		return OpIndex
	case n < 80:
		return OpErase
	case n < 90:
		return OpEraseAt
	case n < 99:
		return OpFind
	default:
		return OpClone
	}
}

func (r *runner) step(op Op) error {
	k := r.rng.Intn(r.cfg.KeySpace)
	v := r.rng.Int()
	switch op {
	case OpInsert:
		it, inserted := r.m.Insert(k, v)
		old, had := r.ref[k]
		if inserted == had {
			return errors.Newf("insert %d: inserted=%t with key present=%t", k, inserted, had)
		}
		if !had {
			r.ref[k] = v
			old = v
		}
		if !it.Valid() || it.Key() != k || it.Value() != old {
			return errors.Newf("insert %d: iterator not positioned at the entry", k)
		}
	case OpIndex:
		p := r.m.Index(k)
		if *p != r.ref[k] {
			return errors.Newf("index %d: got %d, expected %d", k, *p, r.ref[k])
		}
		*p = v
		r.ref[k] = v
	case OpErase:
		_, had := r.ref[k]
		removed := r.m.Erase(k)
		if (removed == 1) != had {
			return errors.Newf("erase %d: removed %d with key present=%t", k, removed, had)
		}
		delete(r.ref, k)
		if r.m.Find(k) != r.m.End() {
			return errors.Newf("erase %d: key still found", k)
		}
	case OpEraseAt:
		it := r.m.MakeIter()
		it.SeekGE(k)
		if !it.Valid() {
			if _, err := r.m.EraseAt(it); !errors.Is(err, avlmap.ErrNotFound) {
				return errors.Newf("erase-at end: got %v, expected not found", err)
			}
			return nil
		}
		erased := it.Key()
		following := it
		following.Next()
		wantValid := following.Valid()
		var wantKey int
		if wantValid {
			wantKey = following.Key()
		}
		next, err := r.m.EraseAt(it)
		if err != nil {
			return errors.Wrapf(err, "erase-at %d", erased)
		}
		delete(r.ref, erased)
		if next.Valid() != wantValid || (wantValid && next.Key() != wantKey) {
			return errors.Newf("erase-at %d: wrong following position", erased)
		}
	case OpFind:
		want, had := r.ref[k]
		if r.m.Count(k) != boolToInt(had) {
			return errors.Newf("count %d: got %d", k, r.m.Count(k))
		}
		got, err := r.m.At(k)
		switch {
		case had && err != nil:
			return errors.Wrapf(err, "at %d", k)
		case had && *got != want:
			return errors.Newf("at %d: got %d, expected %d", k, *got, want)
		case !had && !errors.Is(err, avlmap.ErrNotFound):
			return errors.Newf("at %d: got %v, expected not found", k, err)
		}
	case OpClone:
		c := r.m.Clone()
		if err := c.Verify(); err != nil {
			return err
		}
		if err := CheckOrder(c, r.ref); err != nil {
			return err
		}
		for it := c.Begin(); it.Valid(); it.Next() {
			it.SetValue(-1)
		}
		if err := CheckOrder(r.m, r.ref); err != nil {
			return errors.Wrap(err, "clone is not independent")
		}
		r.m.CopyFrom(c)
		for key := range r.ref {
			r.ref[key] = -1
		}
	case OpClear:
		r.m.Clear()
		r.ref = make(map[int]int)
	default:
		return errors.AssertionFailedf("unknown op %d", op)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CheckOrder verifies that iterating m in both directions yields exactly the
// entries of ref in key order.
func CheckOrder(m *avlmap.Map[int, int], ref map[int]int) error {
	keys := make([]int, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	i := 0
	for it := m.Begin(); it != m.End(); it.Next() {
		if i >= len(keys) {
			return errors.Newf("forward iteration yields extra key %d", it.Key())
		}
		if it.Key() != keys[i] || it.Value() != ref[keys[i]] {
			return errors.Newf("forward iteration at %d: got %d=%d, expected %d=%d",
				i, it.Key(), it.Value(), keys[i], ref[keys[i]])
		}
		i++
	}
	if i != len(keys) {
		return errors.Newf("forward iteration yields %d keys, expected %d", i, len(keys))
	}
	for it := m.Last(); it != m.End(); it.Prev() {
		i--
		if i < 0 || it.Key() != keys[i] {
			return errors.Newf("reverse iteration diverges at %d", i)
		}
	}
	if i != 0 {
		return errors.Newf("reverse iteration stops %d keys early", i)
	}
	return nil
}
