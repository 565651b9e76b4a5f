package service

import (
	"fmt"
	"sync/atomic"
)

// sequenceIDs yields "<prefix>-1", "<prefix>-2", ...
type sequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}
