package event

import "sync/atomic"

// slot is one cell of a lane; seq encodes whether the cell is free for the
// producer at position seq, or readable by the consumer at position seq-1
type slot struct {
	seq atomic.Uint64
	in  Input
}

// lane is a bounded lock-free ring with per-slot sequence numbers
// Producers and consumers claim positions by CAS and never touch a slot
// another goroutine owns, so the payload needs no atomics
type lane struct {
	slots   []slot
	mask    uint64
	enq     atomic.Uint64
	deq     atomic.Uint64
	evict   bool // when full, drop the oldest entry instead of the incoming one
	dropped atomic.Uint64
}

func newLane(size int, evict bool) *lane {
	if size <= 0 || size&(size-1) != 0 {
		panic("event: lane size must be a power of two")
	}
	l := &lane{
		slots: make([]slot, size),
		mask:  uint64(size - 1),
		evict: evict,
	}
	for i := range l.slots {
		l.slots[i].seq.Store(uint64(i))
	}
	return l
}

// push stores in, applying the lane's overflow policy when full
func (l *lane) push(in Input) {
	for {
		if l.offer(in) {
			return
		}
		if !l.evict {
			l.dropped.Add(1)
			return
		}
		if _, ok := l.poll(); ok {
			l.dropped.Add(1)
		}
	}
}

// offer claims the next write position, false when the lane is full
func (l *lane) offer(in Input) bool {
	pos := l.enq.Load()
	for {
		s := &l.slots[pos&l.mask]
		seq := s.seq.Load()
		switch diff := int64(seq) - int64(pos); {
		case diff == 0:
			if l.enq.CompareAndSwap(pos, pos+1) {
				s.in = in
				s.seq.Store(pos + 1) // publish
				return true
			}
			pos = l.enq.Load()
		case diff < 0:
			return false
		default:
			pos = l.enq.Load()
		}
	}
}

// poll takes the oldest published entry
// Returns false when empty or when the oldest writer has not published yet
func (l *lane) poll() (Input, bool) {
	pos := l.deq.Load()
	for {
		s := &l.slots[pos&l.mask]
		seq := s.seq.Load()
		switch diff := int64(seq) - int64(pos+1); {
		case diff == 0:
			if l.deq.CompareAndSwap(pos, pos+1) {
				in := s.in
				s.seq.Store(pos + l.mask + 1) // free for the next lap
				return in, true
			}
			pos = l.deq.Load()
		case diff < 0:
			return Input{}, false
		default:
			pos = l.deq.Load()
		}
	}
}

// drain appends at most one lap of entries to dst in arrival order
func (l *lane) drain(dst []Input) []Input {
	for range len(l.slots) {
		in, ok := l.poll()
		if !ok {
			break
		}
		dst = append(dst, in)
	}
	return dst
}

func (l *lane) len() int {
	n := int64(l.enq.Load()) - int64(l.deq.Load())
	return int(max(0, min(n, int64(len(l.slots)))))
}
