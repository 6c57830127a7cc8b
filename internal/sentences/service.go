package sentences

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
)

var ErrEmpty = errors.New("sentences: candidate list is empty")

// Defaults is the candidate list used when nothing else is configured.
var Defaults = []string{
	"The cat is on the table.",
	"I like to play soccer.",
	"What time is it?",
}

// Picker draws sentences uniformly at random from a fixed list. It is safe
// for concurrent use.
type Picker struct {
	sentences []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPicker copies list. A nil src uses the runtime's global generator.
func NewPicker(list []string, src rand.Source) (*Picker, error) {
	clean := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return nil, ErrEmpty
	}

	p := &Picker{sentences: clean}
	if src != nil {
		p.rnd = rand.New(src)
	}
	return p, nil
}

func (p *Picker) Pick() string {
	if p.rnd == nil {
		return p.sentences[rand.IntN(len(p.sentences))]
	}

	p.mu.Lock()
	i := p.rnd.IntN(len(p.sentences))
	p.mu.Unlock()
	return p.sentences[i]
}

// All returns a copy of the candidate list.
func (p *Picker) All() []string {
	out := make([]string, len(p.sentences))
	copy(out, p.sentences)
	return out
}

// LoadFile reads one sentence per line. Blank lines and lines starting with
// '#' are skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentences file: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read sentences file: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}
