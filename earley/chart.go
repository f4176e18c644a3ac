package earley

// Chart is the ordered sequence of Earley states ending at one input
// position. States are only ever added, never removed; the one change
// made to a state already in the chart is the union of origins that
// insert performs on a duplicate.
type Chart struct {
	states []*State
	byHash map[uint64]*State
}

func newChart() *Chart {
	return &Chart{byHash: make(map[uint64]*State)}
}

// States returns the states currently in the chart. Parse's own
// predictor/scanner/completer loop appends to a chart while iterating
// over it, so it indexes by position with At and Len instead of ranging
// over a single snapshot from States.
func (c *Chart) States() []*State { return c.states }

func (c *Chart) Len() int { return len(c.states) }

func (c *Chart) At(i int) *State { return c.states[i] }

// insert adds s to the chart unless an identical (left, right, dot,
// start, end) tuple already exists, in which case the existing state's
// OriginatingStates absorbs the new state's origins by union instead of
// adding a duplicate entry. Folding the merge in here means every
// insertion path — predictor, scanner, completer — gets it for free.
// It reports whether a new state was actually added.
func (c *Chart) insert(s *State, nextStateNum func() int) (*State, bool) {
	key := s.identityHash()
	if existing, ok := c.byHash[key]; ok {
		for id := range s.OriginatingStates {
			if existing.OriginatingStates == nil {
				existing.OriginatingStates = make(map[int]struct{})
			}
			existing.OriginatingStates[id] = struct{}{}
		}
		return existing, false
	}
	s.StateNum = nextStateNum()
	c.byHash[key] = s
	c.states = append(c.states, s)
	return s, true
}
