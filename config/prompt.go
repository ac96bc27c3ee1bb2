package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Prompter asks questions on a text stream and repeats them until the
// answer is acceptable.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Out returns the stream questions are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// AskLine asks a question and returns the answer. It returns io.EOF when the
// input ends.
func (p *Prompter) AskLine(question string) (string, error) {
	fmt.Fprint(p.out, question)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// AskUint asks until the answer is an unsigned number in [min, max].
func (p *Prompter) AskUint(question string, min, max uint64) (uint64, error) {
	for {
		answer, err := p.AskLine(question)
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseUint(answer, 10, 64)
		if err == nil && n >= min && n <= max {
			return n, nil
		}

		fmt.Fprintln(p.out, "Invalid input.")
	}
}

// PromptHierarchy walks the user through setting up the memory and every
// cache level.
func (p *Prompter) PromptHierarchy() (Hierarchy, error) {
	var h Hierarchy

	memoryLatency, err := p.AskUint("Enter memory access time: ", 0, maxUint)
	if err != nil {
		return h, err
	}

	h.MemoryLatency = memoryLatency

	numLevels, err := p.AskUint("Enter number of cache levels: ", 1, maxUint)
	if err != nil {
		return h, err
	}

	for i := 0; i < int(numLevels); i++ {
		fmt.Fprintf(p.out, "\nL%d Cache Initialisation:\n", i+1)

		level, err := p.promptLevel()
		if err != nil {
			return h, err
		}

		if level.TotalSize > MaxLog2TotalSize {
			fmt.Fprintf(p.out,
				"Invalid cache settings! Total size can not exceed 2^%d bytes.\n",
				MaxLog2TotalSize)
			i--

			continue
		}

		h.Levels = append(h.Levels, level)
	}

	fmt.Fprintln(p.out)

	return h, nil
}

const maxUint = ^uint64(0)

func (p *Prompter) promptLevel() (Level, error) {
	var l Level

	blockSize, err := p.AskUint(
		"Enter block size in bytes as a power of 2: 2^", 0, 63)
	if err != nil {
		return l, err
	}

	associativity, err := p.AskUint(
		"Enter set size in blocks as a power of 2: 2^", 0, 63)
	if err != nil {
		return l, err
	}

	minTotal := blockSize + associativity
	totalSize, err := p.AskUint(fmt.Sprintf(
		"Enter total cache size in bytes as a power of 2 (must be at least 2^%d): 2^",
		minTotal), minTotal, 63)
	if err != nil {
		return l, err
	}

	policy, err := p.AskUint(
		"Select replacement policy (1. FIFO, 2. LRU, 3. Random): ", 1, 3)
	if err != nil {
		return l, err
	}

	hitLatency, err := p.AskUint("Enter hit time: ", 0, maxUint)
	if err != nil {
		return l, err
	}

	return Level{
		BlockSize:     uint(blockSize),
		Associativity: uint(associativity),
		TotalSize:     uint(totalSize),
		Policy:        strconv.FormatUint(policy, 10),
		HitLatency:    hitLatency,
	}, nil
}
