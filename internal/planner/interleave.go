package planner

// interleaveByTopic reorders slots so that no two adjacent slots share a
// topic whenever the multiset of topics allows it (Bjork's interleaving:
// alternate topics instead of blocking them). Relative order within a
// topic is preserved, and between topics the slot that appeared earlier
// in the input (higher priority) is preferred, except when one topic
// holds a strict majority of the remaining slots and must be drained to
// keep a no-adjacency ordering reachable.
func interleaveByTopic(slots []Slot) []Slot {
	if len(slots) < 3 {
		return slots
	}

	type entry struct {
		slot Slot
		pos  int
	}
	queues := make(map[string][]entry)
	var order []string // topics by first appearance
	for i, s := range slots {
		topic := s.Item.Topic
		if _, seen := queues[topic]; !seen {
			order = append(order, topic)
		}
		queues[topic] = append(queues[topic], entry{slot: s, pos: i})
	}
	if len(order) == 1 {
		return slots
	}

	out := make([]Slot, 0, len(slots))
	prev := ""
	remaining := len(slots)

	for remaining > 0 {
		pick := ""

		// A topic holding a strict majority of what's left must be
		// emitted now or adjacency becomes unavoidable later.
		for _, topic := range order {
			if topic != prev && 2*len(queues[topic]) > remaining {
				pick = topic
				break
			}
		}

		// Otherwise take the highest-priority head among topics that
		// don't repeat the previous slot's topic.
		if pick == "" {
			best := -1
			for _, topic := range order {
				q := queues[topic]
				if len(q) == 0 || topic == prev {
					continue
				}
				if best == -1 || q[0].pos < best {
					best = q[0].pos
					pick = topic
				}
			}
		}

		// Only the previous topic has slots left: adjacency is forced.
		if pick == "" {
			pick = prev
		}

		q := queues[pick]
		out = append(out, q[0].slot)
		queues[pick] = q[1:]
		prev = pick
		remaining--
	}
	return out
}
