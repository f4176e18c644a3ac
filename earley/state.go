// Package earley implements the Earley chart-parsing engine: the
// predictor/scanner/completer loop over charts, and the chart-to-tree
// reconstructor that recovers explicit derivations from the completed
// chart.
package earley

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nlparse/earley/grammar"
	"github.com/zeebo/xxh3"
)

// GammaSymbol is the synthetic outermost category the given start
// symbol is wrapped in, used to detect a full parse.
const GammaSymbol = "γ"

// ErrInvalidDotIndex is returned by NewState when dotIndex falls outside
// [1, len(rightHand)+1].
var ErrInvalidDotIndex = errors.New("earley: invalid dot index")

// State is one Earley item: a production being recognized over
// [StartIndex, EndIndex), with a dot marking how much of RightHand has
// been matched so far.
type State struct {
	StateNum   int
	StartIndex int
	EndIndex   int
	LeftHand   grammar.Category
	RightHand  grammar.Sequence
	DotIndex   int

	// OriginatingStates is the set of state numbers of prior states that
	// produced or extended this state, used for tree reconstruction.
	OriginatingStates map[int]struct{}

	// Lexical marks a state built by the scanner directly from a sentence
	// token, rather than by the completer from sub-constituents — the
	// only states whose RightHand holds a Token instead of a Category.
	Lexical bool
}

// NewState validates dotIndex before constructing a State; stateNum is
// assigned by the Chart the state is inserted into, not here.
func NewState(start, end int, lhs grammar.Category, rhs grammar.Sequence, dotIndex int) (*State, error) {
	if dotIndex < 1 || dotIndex > len(rhs)+1 {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDotIndex, dotIndex, len(rhs)+1)
	}
	return &State{
		StartIndex: start,
		EndIndex:   end,
		LeftHand:   lhs,
		RightHand:  rhs,
		DotIndex:   dotIndex,
	}, nil
}

// IsIncomplete reports whether the dot still has right-hand symbols ahead
// of it.
func (s *State) IsIncomplete() bool { return s.DotIndex <= len(s.RightHand) }

// NFound is the sentinel NextCategory returns for a complete state.
const NFound = "NFound"

// NextCategory returns the category right after the dot, or NFound if s
// is complete.
func (s *State) NextCategory() grammar.Category {
	if !s.IsIncomplete() {
		return NFound
	}
	return s.RightHand[s.DotIndex-1]
}

// IsSpanning reports whether s recognizes the whole of an n-token
// sentence under the γ pseudo-rule — a full parse.
func (s *State) IsSpanning(n int) bool {
	return s.StartIndex == 1 && s.EndIndex == n+1 && s.LeftHand == GammaSymbol
}

// advance returns a copy of s with the dot moved one position forward
// and a new end index — used by the completer, which never moves the
// dot of a state already inserted into a chart.
func (s *State) advance(end int, origin int) *State {
	next := &State{
		StartIndex:        s.StartIndex,
		EndIndex:          end,
		LeftHand:          s.LeftHand,
		RightHand:         s.RightHand,
		DotIndex:          s.DotIndex + 1,
		OriginatingStates: make(map[int]struct{}, len(s.OriginatingStates)+1),
	}
	for id := range s.OriginatingStates {
		next.OriginatingStates[id] = struct{}{}
	}
	next.OriginatingStates[origin] = struct{}{}
	return next
}

// identityHash hashes the (left, right, dot, start, end) tuple that
// defines state identity within one chart — no two states in the same
// chart share an identity tuple, so this hash is Chart's dedup key.
func (s *State) identityHash() uint64 {
	buf := make([]byte, 0, 16+8*len(s.RightHand))
	buf = append(buf, []byte(s.LeftHand)...)
	buf = append(buf, 0)
	for _, cat := range s.RightHand {
		buf = append(buf, []byte(cat)...)
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.DotIndex))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.StartIndex))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.EndIndex))
	return xxh3.Hash(buf)
}
