package testutil

import "sync"

// Entry is one recorded log call.
type Entry struct {
	Level string
	Msg   string
	Args  []any
}

// Attr returns the value logged for key, or nil.
func (e Entry) Attr(key string) any {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if k, ok := e.Args[i].(string); ok && k == key {
			return e.Args[i+1]
		}
	}
	return nil
}

// Logger records every call. It implements logging.Logger.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

func (l *Logger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Args: args})
}

// Debug records a debug entry.
func (l *Logger) Debug(msg string, args ...any) { l.add("debug", msg, args) }

// Info records an info entry.
func (l *Logger) Info(msg string, args ...any) { l.add("info", msg, args) }

// Warn records a warn entry.
func (l *Logger) Warn(msg string, args ...any) { l.add("warn", msg, args) }

// Error records an error entry.
func (l *Logger) Error(msg string, args ...any) { l.add("error", msg, args) }

// Entries returns a copy of every recorded entry.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the entries logged with msg.
func (l *Logger) Messages(msg string) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Msg == msg {
			out = append(out, e)
		}
	}
	return out
}
