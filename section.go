package flowtext

import "sort"

// Section is a repeating section: a contiguous template range [From,To)
// of the buffer, replicated once per element of the data array bound to
// Path at merge time. Edits always address the template; the unrolled
// copies exist only in the ephemeral render text produced by package
// flowtext/merge.
type Section struct {
	ID       int
	From, To int // half-open template range, From ≤ To
	Path     string
}

// SectionSet is the id→range mapping for the repeating sections of one
// text. Sections never nest or overlap; this is enforced at creation.
type SectionSet struct {
	sections map[int]*Section
}

func newSectionSet() *SectionSet {
	return &SectionSet{sections: make(map[int]*Section)}
}

// add validates the new section against all existing ones.
func (ss *SectionSet) add(s *Section) error {
	if s.From > s.To {
		return ErrInvalidRange
	}
	for _, other := range ss.sections {
		if s.From < other.To && other.From < s.To {
			return ErrOverlappingSection
		}
	}
	ss.sections[s.ID] = s
	return nil
}

// ByID finds a section by its id.
func (ss *SectionSet) ByID(id int) (*Section, error) {
	s, ok := ss.sections[id]
	if !ok {
		return nil, ErrUnknownAnnotation
	}
	return s, nil
}

// All returns all sections in ascending template order.
func (ss *SectionSet) All() []*Section {
	out := make([]*Section, 0, len(ss.sections))
	for _, s := range ss.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// Covering returns the section whose template range contains pos, if any.
func (ss *SectionSet) Covering(pos int) (*Section, bool) {
	for _, s := range ss.sections {
		if pos >= s.From && pos < s.To {
			return s, true
		}
	}
	return nil, false
}

func (ss *SectionSet) remove(id int) error {
	if _, ok := ss.sections[id]; !ok {
		return ErrUnknownAnnotation
	}
	delete(ss.sections, id)
	return nil
}

func (ss *SectionSet) shiftInsert(i, l int) {
	for _, s := range ss.sections {
		if s.From >= i {
			s.From += l
		}
		if s.To > i {
			s.To += l
		}
	}
}

// shiftDelete adjusts section ranges for a deletion of [s,e). A section
// fully contained in the deleted span is removed and returned. A section
// partially overlapping the span has the overlapping boundary clamped to
// the cut position.
func (ss *SectionSet) shiftDelete(s, e int) []*Section {
	l := e - s
	var removed []*Section
	for id, sec := range ss.sections {
		if sec.From >= s && sec.To <= e {
			removed = append(removed, sec)
			delete(ss.sections, id)
			continue
		}
		sec.From = shiftIndexDelete(sec.From, s, e, l)
		sec.To = shiftEndDelete(sec.To, s, e, l)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].From < removed[j].From })
	return removed
}
