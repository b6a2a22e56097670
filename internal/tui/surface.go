package tui

// paneSurface is the countdown.Surface behind the countdown screen. It
// only records text and markers; View turns the marker set into
// styling.
type paneSurface struct {
	text    string
	markers map[string]bool
}

func newPaneSurface() *paneSurface {
	return &paneSurface{markers: make(map[string]bool)}
}

func (s *paneSurface) SetText(text string) {
	s.text = text
}

func (s *paneSurface) AddMarker(name string) {
	s.markers[name] = true
}

func (s *paneSurface) RemoveMarker(name string) {
	delete(s.markers, name)
}

func (s *paneSurface) Text() string {
	return s.text
}

func (s *paneSurface) Has(name string) bool {
	return s.markers[name]
}
