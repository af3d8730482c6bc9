package solver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pomdp-parity/internal/set"
)

func intSetKey(s set.Set[int]) string {
	xs := s.List()
	sort.Ints(xs)
	var sb strings.Builder
	for _, x := range xs {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(',')
	}
	return sb.String()
}

// mecsEqual reports whether two MEC-candidate lists contain the same
// multiset of state sets, independent of order: the refinement loop
// rebuilds its candidate list from a SCC split each round, so two
// candidate lists that are equal as sets of sets (but were produced in a
// different enumeration order) must compare equal for the fixed point to
// be detected.
func mecsEqual(a, b []set.Set[int]) bool {
	if len(a) != len(b) {
		return false
	}
	ak := make([]string, len(a))
	bk := make([]string, len(b))
	for i, s := range a {
		ak[i] = intSetKey(s)
	}
	for i, s := range b {
		bk[i] = intSetKey(s)
	}
	sort.Strings(ak)
	sort.Strings(bk)
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}
	return true
}

func actEqual(a, b map[int]set.Set[int]) bool {
	if len(a) != len(b) {
		return false
	}
	for k, sa := range a {
		sb, ok := b[k]
		if !ok || sa.Len() != sb.Len() {
			return false
		}
		for _, x := range sa.List() {
			if !sb.Contains(x) {
				return false
			}
		}
	}
	return true
}

func cloneActs(act map[int]set.Set[int]) map[int]set.Set[int] {
	out := make(map[int]set.Set[int], len(act))
	for k, v := range act {
		out[k] = v.Clone()
	}
	return out
}
