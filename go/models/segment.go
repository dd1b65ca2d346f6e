package models

type Segment struct {
	Start, End uint64
}

func (s *Segment) Size() uint64 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s *Segment) Contains(addr uint64) bool {
	return s.Start <= addr && addr < s.End
}

func (s *Segment) Overlaps(o *Segment) bool {
	return (s.Start >= o.Start && s.Start < o.End) || (o.Start >= s.Start && o.Start < s.End)
}
