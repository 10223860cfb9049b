package core

// ScreenStack holds the overlays opened above the bar, topmost last.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// ReplaceTop swaps the topmost screen for next. A nil next keeps it.
func (s *ScreenStack) ReplaceTop(next Screen) {
	if next == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = next
}

// Clear drops every screen.
func (s *ScreenStack) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
