package scheduler

import (
	"sync"

	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
)

// CallbackType identifies a point in a command's lifecycle.
type CallbackType string

const (
	// CallbackInitialize fires after a command has been initialized and
	// added to the scheduled set.
	CallbackInitialize CallbackType = "initialize"

	// CallbackExecute fires after each Execute call.
	CallbackExecute CallbackType = "execute"

	// CallbackFinish fires after a command finished on its own and was ended.
	CallbackFinish CallbackType = "finish"

	// CallbackInterrupt fires after a command was cancelled, preempted by a
	// requirement conflict, or ended because it panicked.
	CallbackInterrupt CallbackType = "interrupt"
)

// CallbackContext describes the command a callback fires for.
type CallbackContext struct {
	// RunID correlates every event of one scheduling of a command.
	RunID string

	// Command is the command the event belongs to.
	Command core.Command

	// CallbackType is the lifecycle point that triggered the callback.
	CallbackType CallbackType

	// Err is set for interrupts caused by a recovered panic.
	Err error
}

// Callback is a lifecycle hook registered with a CallbackManager.
type Callback interface {
	// Type returns the lifecycle point this callback handles.
	Type() CallbackType

	// Execute runs the callback. A returned error stops the remaining
	// callbacks of the same type for this event and is logged by the
	// scheduler.
	Execute(cc *CallbackContext) error
}

// FunctionCallback wraps a function as a Callback.
type FunctionCallback struct {
	callbackType CallbackType
	fn           func(cc *CallbackContext) error
}

// NewFunctionCallback creates a callback that calls fn for callbackType.
func NewFunctionCallback(callbackType CallbackType, fn func(cc *CallbackContext) error) *FunctionCallback {
	return &FunctionCallback{
		callbackType: callbackType,
		fn:           fn,
	}
}

// Type returns the callback type this function handles.
func (c *FunctionCallback) Type() CallbackType {
	return c.callbackType
}

// Execute calls the wrapped function.
func (c *FunctionCallback) Execute(cc *CallbackContext) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(cc)
}

// LoggingCallback writes one debug entry per lifecycle event.
type LoggingCallback struct {
	callbackType CallbackType
	logger       logging.Logger
}

// NewLoggingCallback creates a callback that logs callbackType events to logger.
func NewLoggingCallback(callbackType CallbackType, logger logging.Logger) *LoggingCallback {
	return &LoggingCallback{
		callbackType: callbackType,
		logger:       logging.OrNoOp(logger),
	}
}

// Type returns the callback type this logger handles.
func (c *LoggingCallback) Type() CallbackType {
	return c.callbackType
}

// Execute logs the event with its run ID and command name.
func (c *LoggingCallback) Execute(cc *CallbackContext) error {
	args := []any{"event", string(c.callbackType), "run_id", cc.RunID}
	if cc.Command != nil {
		args = append(args, "command", cc.Command.Name())
	}
	if cc.Err != nil {
		args = append(args, "error", cc.Err)
	}
	c.logger.Debug("scheduler.callback", args...)
	return nil
}

// CallbackManager routes lifecycle events to registered callbacks.
//
// Callbacks run in registration order. Registration may happen from any
// goroutine; execution happens on the scheduler's goroutine.
type CallbackManager struct {
	mu        sync.RWMutex
	callbacks map[CallbackType][]Callback
}

// NewCallbackManager creates an empty callback manager.
func NewCallbackManager() *CallbackManager {
	return &CallbackManager{
		callbacks: make(map[CallbackType][]Callback),
	}
}

// RegisterCallback adds a callback for its type.
func (cm *CallbackManager) RegisterCallback(callback Callback) {
	if callback == nil {
		return
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks[callback.Type()] = append(cm.callbacks[callback.Type()], callback)
}

// Len returns the number of callbacks registered for callbackType.
func (cm *CallbackManager) Len(callbackType CallbackType) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.callbacks[callbackType])
}

// ExecuteCallbacks runs every callback registered for callbackType and
// returns the first error. Callbacks after a failing one are skipped.
func (cm *CallbackManager) ExecuteCallbacks(callbackType CallbackType, cc *CallbackContext) error {
	cm.mu.RLock()
	callbacks := append([]Callback(nil), cm.callbacks[callbackType]...)
	cm.mu.RUnlock()

	cc.CallbackType = callbackType
	for _, callback := range callbacks {
		if err := callback.Execute(cc); err != nil {
			return err
		}
	}
	return nil
}
