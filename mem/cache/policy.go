package cache

import (
	"fmt"
	"strings"
)

// ReplacementPolicy selects which block a full set gives up on a miss.
type ReplacementPolicy int

// The replacement policies. The numbering matches the setup menu.
const (
	FIFO ReplacementPolicy = iota + 1
	LRU
	Random
)

func (p ReplacementPolicy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("ReplacementPolicy(%d)", int(p))
	}
}

// ParseReplacementPolicy accepts a policy name (case-insensitive) or its menu
// number.
func ParseReplacementPolicy(s string) (ReplacementPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "1":
		return FIFO, nil
	case "lru", "2":
		return LRU, nil
	case "random", "3":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown replacement policy %q", s)
	}
}
