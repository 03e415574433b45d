package lineedit

// Browsing the history replaces the content of the line with history
// entries. The line being edited when browsing starts is kept aside and
// comes back when NextHistory walks past the newest entry; it is discarded
// when a line is appended to the history.

func (e *Engine) appendToHistory() {
	content := e.buf.Content()
	if content == "" {
		return
	}
	if e.history.Add(content) {
		logger.Printf("history full, dropped oldest entry to add %q", content)
	}
	e.hasHistory = true
	e.historyCursor = -1
	e.live = ""
}

func (e *Engine) previousHistory() {
	if !e.hasHistory || e.historyCursor >= e.history.Len()-1 {
		return
	}
	if e.historyCursor == -1 {
		e.live = e.buf.Content()
	}
	e.historyCursor++
	e.showHistoryEntry()
}

func (e *Engine) nextHistory() {
	if e.historyCursor < 0 {
		return
	}
	e.historyCursor--
	if e.historyCursor >= 0 {
		e.showHistoryEntry()
		return
	}
	e.buf.Set(e.live)
	e.buf.MoveToEnd()
	e.live = ""
}

func (e *Engine) showHistoryEntry() {
	entry, err := e.history.Get(e.historyCursor)
	if err != nil {
		// historyCursor is always kept within the history.
		panic(err)
	}
	e.buf.Set(entry)
	e.buf.MoveToEnd()
}

// HasHistory returns whether any line has ever been appended to the history.
func (e *Engine) HasHistory() bool { return e.hasHistory }

// HistoryCursor returns the index of the history entry being shown, where 0
// is the newest entry, or -1 when not browsing the history.
func (e *Engine) HistoryCursor() int { return e.historyCursor }

// History returns a copy of the history entries, newest first.
func (e *Engine) History() []string { return e.history.All() }
