package chooser

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chopshop166/commandrobot/core"
)

var _ core.Selector = (*Chooser)(nil)

// ErrUnknownOption is returned by Select for a name that was never added.
var ErrUnknownOption = errors.New("chooser: unknown option")

// Chooser holds named autonomous commands and the operator's current pick.
// Selected falls back to the default option when nothing was picked. It is
// safe for concurrent use, so a dashboard goroutine may call Select while the
// control loop calls Selected.
type Chooser struct {
	mu       sync.RWMutex
	names    []string
	options  map[string]core.Command
	def      string
	selected string
}

// New constructs an empty chooser.
func New() *Chooser {
	return &Chooser{options: make(map[string]core.Command)}
}

// AddOption adds or replaces a named option. Replacing keeps the original
// position in Options.
func (c *Chooser) AddOption(name string, cmd core.Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(name, cmd)
}

// SetDefaultOption adds the option and makes it the default. It reports
// whether a different default was replaced.
func (c *Chooser) SetDefaultOption(name string, cmd core.Command) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(name, cmd)
	replaced := c.def != "" && c.def != name
	c.def = name
	return replaced
}

// Select records the operator's choice. An empty name clears it.
func (c *Chooser) Select(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name != "" {
		if _, ok := c.options[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
	}
	c.selected = name
	return nil
}

// Selected returns the chosen command, the default when nothing was chosen,
// or nil when neither exists.
func (c *Chooser) Selected() core.Command {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected != "" {
		return c.options[c.selected]
	}
	if c.def != "" {
		return c.options[c.def]
	}
	return nil
}

// SelectedName returns the name Selected resolves to, or "".
func (c *Chooser) SelectedName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected != "" {
		return c.selected
	}
	return c.def
}

// Default returns the name of the default option, or "".
func (c *Chooser) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.def
}

// Options returns the option names in insertion order.
func (c *Chooser) Options() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup returns the command registered under name.
func (c *Chooser) Lookup(name string) (core.Command, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cmd, ok := c.options[name]
	return cmd, ok
}

func (c *Chooser) addLocked(name string, cmd core.Command) {
	if _, ok := c.options[name]; !ok {
		c.names = append(c.names, name)
	}
	c.options[name] = cmd
}
