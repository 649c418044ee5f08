package bind

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/hollis/imscript/script"
)

var frameLog = commonlog.GetLogger("imscript.frame")

// ---------------------------------------------------------------------------
// Context: one script execution context and its frame boundary
// ---------------------------------------------------------------------------

// Context ties a script context to its own shadow-stack tracker. All calls
// for one context run synchronously to completion in order; contexts are
// not shared across goroutines.
type Context struct {
	ID       string
	Registry *Registry
	Tracker  *Tracker
}

// NewContext creates a script context over the registry.
func NewContext(r *Registry) *Context {
	return &Context{
		ID:       uuid.NewString(),
		Registry: r,
		Tracker:  r.NewTracker(),
	}
}

// Call dispatches one native call for this context.
func (c *Context) Call(name string, args ...script.Value) ([]script.Value, error) {
	return c.Registry.Call(c.Tracker, name, args)
}

// RunFrame executes one frame's worth of script calls and then unwinds the
// shadow stack, exactly once, no matter how fn terminated: normal return,
// script error, or panic. Errors are caught here, logged with context, and
// returned; they never escape to crash the host. The next frame starts
// from a clean baseline.
func (c *Context) RunFrame(fn func(*Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script panic: %v", p)
		}
		closed := c.Tracker.Unwind()
		if len(closed) > 0 {
			names := make([]string, len(closed))
			for i, s := range closed {
				names[i] = c.Tracker.table.Name(s)
			}
			frameLog.Warningf("context %s: force-closed %d open scope(s): %s",
				c.ID, len(closed), strings.Join(names, ", "))
		}
		if err != nil {
			frameLog.Errorf("context %s: %s", c.ID, err)
		}
	}()
	return fn(c)
}
