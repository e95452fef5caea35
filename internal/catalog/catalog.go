package catalog

import "fmt"

// #region errors

// ErrDuplicateHabit and friends are load-time data-integrity failures.
var (
	ErrDuplicateHabit = fmt.Errorf("duplicate habit id")
	ErrDuplicateOrgan = fmt.Errorf("duplicate organ id")
	ErrBadDefinition  = fmt.Errorf("bad definition")
)

// #endregion errors

// #region constructor

// New builds a Catalog from habit and organ definitions, preserving the
// given order for iteration. Fails on duplicates or malformed records.
func New(habits []Habit, organs []Organ) (*Catalog, error) {
	c := &Catalog{
		habits: make(map[HabitID]Habit, len(habits)),
		organs: make(map[OrganID]Organ, len(organs)),
	}

	for _, h := range habits {
		if err := checkHabit(h); err != nil {
			return nil, err
		}
		if _, dup := c.habits[h.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHabit, h.ID)
		}
		c.habits[h.ID] = h
		c.habitOrder = append(c.habitOrder, h.ID)
	}

	for _, o := range organs {
		if o.ID == "" || o.DisplayName == "" {
			return nil, fmt.Errorf("%w: organ %q missing id or display name", ErrBadDefinition, o.ID)
		}
		if _, dup := c.organs[o.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrgan, o.ID)
		}
		c.organs[o.ID] = o
		c.organOrder = append(c.organOrder, o.ID)
	}

	return c, nil
}

func checkHabit(h Habit) error {
	if h.ID == "" || h.DisplayName == "" {
		return fmt.Errorf("%w: habit %q missing id or display name", ErrBadDefinition, h.ID)
	}
	if h.Valence != Beneficial && h.Valence != Harmful {
		return fmt.Errorf("%w: habit %s has valence %q", ErrBadDefinition, h.ID, h.Valence)
	}
	if h.MaxLevel < 1 {
		return fmt.Errorf("%w: habit %s has max level %d", ErrBadDefinition, h.ID, h.MaxLevel)
	}
	if len(h.Levels) != h.MaxLevel {
		return fmt.Errorf("%w: habit %s declares %d level labels for max level %d",
			ErrBadDefinition, h.ID, len(h.Levels), h.MaxLevel)
	}
	return nil
}

// #endregion constructor

// #region accessors

// Habit looks up one habit by id.
func (c *Catalog) Habit(id HabitID) (Habit, bool) {
	h, ok := c.habits[id]
	return h, ok
}

// Habits returns all habits in declaration order.
func (c *Catalog) Habits() []Habit {
	out := make([]Habit, 0, len(c.habitOrder))
	for _, id := range c.habitOrder {
		out = append(out, c.habits[id])
	}
	return out
}

// Organ looks up one organ by id.
func (c *Catalog) Organ(id OrganID) (Organ, bool) {
	o, ok := c.organs[id]
	return o, ok
}

// Organs returns all organs in declaration order.
func (c *Catalog) Organs() []Organ {
	out := make([]Organ, 0, len(c.organOrder))
	for _, id := range c.organOrder {
		out = append(out, c.organs[id])
	}
	return out
}

// DisplayName returns the habit's display name, or the raw id for
// habits the catalog does not know.
func (c *Catalog) DisplayName(id HabitID) string {
	if h, ok := c.habits[id]; ok {
		return h.DisplayName
	}
	return string(id)
}

// #endregion accessors
