package status

import "sync"

type syncPixel struct {
	mu sync.Mutex
	n  int
}

func (p *syncPixel) SetColor(r, g, b uint8) error {
	p.mu.Lock()
	p.n++
	p.mu.Unlock()
	return nil
}

func (p *syncPixel) Clear() error {
	p.mu.Lock()
	p.n++
	p.mu.Unlock()
	return nil
}

func (p *syncPixel) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}
