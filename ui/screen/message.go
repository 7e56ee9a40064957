package screen

import (
	"uf2status/ui/fb"
	"uf2status/ui/font8"

	"tinygo.org/x/tinyfont"
)

// DrawMessage fills the screen with bg and writes lines top to bottom in
// fg through tinyfont. Lines are wrapped at the screen width; whatever does
// not fit vertically is dropped.
func (s *Session) DrawMessage(bg, fg uint8, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.fb
	f.Clear()
	f.FillBar(0, f.Height(), bg)

	d := fb.NewDisplayer(f)
	c := fb.RGBA(fg)
	cols := f.Width() / font8.GlyphWidth
	if cols <= 0 {
		cols = 1
	}
	adv := int(font8.Font.GetYAdvance())

	// tinyfont positions text by baseline.
	y := font8.GlyphHeight - 1
	for _, line := range wrap(lines, cols) {
		if y+1 > f.Height() {
			break
		}
		tinyfont.WriteLine(d, font8.Font, 0, int16(y), line, c)
		y += adv
	}
	return s.flush()
}

func wrap(lines []string, cols int) []string {
	var out []string
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		for len(line) > 0 {
			n := cols
			if n > len(line) {
				n = len(line)
			}
			out = append(out, line[:n])
			line = line[n:]
			for len(line) > 0 && line[0] == ' ' {
				line = line[1:]
			}
		}
	}
	return out
}
