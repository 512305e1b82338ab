package handbook

// State is the per-session page state shared by the page's handlers.
// It is constructed once at startup and passed to the components that
// need it.
type State struct {
	Theme       Theme
	Progress    *Progress
	SidebarOpen bool
	SearchOpen  bool
}

// NewState returns the initial state for a session.
func NewState(theme Theme, progress *Progress) *State {
	if theme.Validate() != nil {
		theme = DefaultTheme
	}
	if progress == nil {
		progress = &Progress{}
	}
	return &State{
		Theme:       theme,
		Progress:    progress,
		SidebarOpen: true,
	}
}

// OpenSearch marks the search dialog as open.
func (s *State) OpenSearch() {
	s.SearchOpen = true
}

// CloseSearch marks the search dialog as closed.
func (s *State) CloseSearch() {
	s.SearchOpen = false
}

// ToggleSidebar flips the sidebar and returns its new visibility.
func (s *State) ToggleSidebar() bool {
	s.SidebarOpen = !s.SidebarOpen
	return s.SidebarOpen
}

// Visit closes search and records id as read. It reports whether id was
// new to the reading progress.
func (s *State) Visit(id string) bool {
	s.CloseSearch()
	return s.Progress.Mark(id)
}
