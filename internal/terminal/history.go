package terminal

// History is an ordered list of submitted commands with a recall cursor.
// The cursor ranges over [0, Len()]; Len() denotes the blank line past the
// newest entry. History is not safe for concurrent use.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends command unless it is empty or equal to the newest entry. The
// cursor always moves past the end. It reports whether command was appended.
func (h *History) Add(command string) bool {
	added := false
	if command != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != command) {
		h.entries = append(h.entries, command)
		added = true
	}
	h.cursor = len(h.entries)
	return added
}

// Load replaces the entries with commands, applying the same rules as Add.
func (h *History) Load(commands []string) {
	h.entries = h.entries[:0]
	for _, c := range commands {
		h.Add(c)
	}
	h.cursor = len(h.entries)
}

// Previous moves the cursor one entry back, stopping at the oldest, and
// returns the entry under it.
func (h *History) Previous() string {
	if h.cursor > 0 {
		h.cursor--
	}
	return h.current()
}

// Next moves the cursor one entry forward, stopping past the newest, and
// returns the entry under it or "" past the end.
func (h *History) Next() string {
	if h.cursor < len(h.entries) {
		h.cursor++
	}
	return h.current()
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Cursor() int { return h.cursor }

func (h *History) current() string {
	if h.cursor >= len(h.entries) {
		return ""
	}
	return h.entries[h.cursor]
}
