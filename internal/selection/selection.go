package selection

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/vitalsign/habit-engine/internal/catalog"
)

// #region types

// Selection maps habit ids to intensity levels. Level 0 means "not
// practiced" and is equivalent to the habit being absent. The engine
// receives selections by value and never mutates them.
type Selection map[catalog.HabitID]int

// Dropped records one entry removed during normalization.
type Dropped struct {
	HabitID catalog.HabitID
	Level   int
	Reason  string
}

// #endregion types

// #region errors

// ErrInvalidLevel marks a level that is negative or above the habit's
// declared maximum. Raised at the boundary so caller bugs are not
// masked by silent clamping.
var ErrInvalidLevel = fmt.Errorf("invalid habit level")

// #endregion errors

// #region validate

// ValidateLevels checks every known habit's level against the catalog.
// Unknown habit ids are not an error here; Normalize handles those.
func ValidateLevels(sel Selection, cat *catalog.Catalog) error {
	for id, level := range sel {
		h, ok := cat.Habit(id)
		if !ok {
			continue
		}
		if level < 0 || level > h.MaxLevel {
			return fmt.Errorf("%w: %s level %d outside [0, %d]", ErrInvalidLevel, id, level, h.MaxLevel)
		}
	}
	return nil
}

// Normalize validates levels and strips entries the engine must ignore:
// unknown habit ids (forward compatibility no-ops) and level-0 entries.
// The input selection is never modified.
func Normalize(sel Selection, cat *catalog.Catalog) (Selection, []Dropped, error) {
	if err := ValidateLevels(sel, cat); err != nil {
		return nil, nil, err
	}

	out := make(Selection, len(sel))
	var dropped []Dropped
	for id, level := range sel {
		if _, ok := cat.Habit(id); !ok {
			dropped = append(dropped, Dropped{HabitID: id, Level: level, Reason: "unknown habit"})
			continue
		}
		if level == 0 {
			continue
		}
		out[id] = level
	}

	sort.Slice(dropped, func(i, j int) bool { return dropped[i].HabitID < dropped[j].HabitID })
	return out, dropped, nil
}

// #endregion validate

// #region canonical

// Canonical renders an order-independent encoding of the selection:
// "id=level" pairs sorted by id, level-0 entries omitted. Two
// selections that the engine treats identically encode identically.
func Canonical(sel Selection) string {
	ids := make([]string, 0, len(sel))
	for id, level := range sel {
		if level == 0 {
			continue
		}
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%s=%d", id, sel[catalog.HabitID(id)])
	}
	return b.String()
}

// Hash returns the SHA-256 of the canonical encoding, hex-encoded.
// The natural memoization key for cached profiles.
func Hash(sel Selection) string {
	sum := sha256.Sum256([]byte(Canonical(sel)))
	return hex.EncodeToString(sum[:])
}

// #endregion canonical

// #region clone

// Clone returns an independent copy.
func Clone(sel Selection) Selection {
	out := make(Selection, len(sel))
	for id, level := range sel {
		out[id] = level
	}
	return out
}

// #endregion clone
