package gfx

// Poll waits up to timeoutMs for the next event. It reports false on timeout.
type Poll func(timeoutMs int) (Event, bool)

// EventsConsumerStrategy decides how many pending events the loop handles
// before it gets a chance to render.
type EventsConsumerStrategy interface {
	Consume(poll Poll, handle func(Event), timeoutMs int) int
}

// DrainAllStrategy handles every pending event each pass.
type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll Poll, handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, 0)
}

// DrainMaxStrategy handles at most Max events each pass so a flood of input
// cannot starve rendering.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll Poll, handle func(Event), timeoutMs int) int {
	limit := s.Max
	if limit <= 0 {
		limit = 1
	}
	return drain(poll, handle, timeoutMs, limit)
}

// drain blocks for the first event only; limit 0 means no limit.
func drain(poll Poll, handle func(Event), timeoutMs, limit int) int {
	count := 0
	for wait := timeoutMs; limit == 0 || count < limit; wait = 0 {
		event, ok := poll(wait)
		if !ok {
			break
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
