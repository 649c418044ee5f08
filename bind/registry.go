package bind

import (
	"fmt"

	"github.com/hollis/imscript/script"
)

// ---------------------------------------------------------------------------
// Registry: script-visible names to native bindings
// ---------------------------------------------------------------------------

// CallbackFunc is a named native operation bound without a descriptor.
// Callbacks do their own argument handling and are used for higher-level
// subsystems (the runtime asset store) rather than the widget surface.
type CallbackFunc func(args []script.Value) ([]script.Value, error)

// Registry holds every binding a script context can call: descriptor-driven
// widget functions and free-form callbacks, in one namespace. It is built
// once at startup and read-only afterwards.
type Registry struct {
	slots     *SlotTable
	byName    map[string]*Descriptor
	callbacks map[string]CallbackFunc
	names     []string // registration order; the enumerable surface
}

// NewRegistry creates an empty registry over the given slot table.
func NewRegistry(slots *SlotTable) *Registry {
	return &Registry{
		slots:     slots,
		byName:    make(map[string]*Descriptor),
		callbacks: make(map[string]CallbackFunc),
	}
}

// Register adds a descriptor, validating it eagerly so malformed
// catalogues fail at startup rather than mid-frame.
func (r *Registry) Register(d *Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no name")
	}
	if r.taken(d.Name) {
		return fmt.Errorf("duplicate binding name %q", d.Name)
	}
	if d.Fn == nil {
		return fmt.Errorf("%s: descriptor has no native thunk", d.Name)
	}
	if err := r.validate(d); err != nil {
		return err
	}
	r.byName[d.Name] = d
	r.names = append(r.names, d.Name)
	return nil
}

// MustRegister is Register that panics, for use in catalogue construction.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// RegisterCallback adds a named callback.
func (r *Registry) RegisterCallback(name string, fn CallbackFunc) error {
	if r.taken(name) {
		return fmt.Errorf("duplicate binding name %q", name)
	}
	r.callbacks[name] = fn
	r.names = append(r.names, name)
	return nil
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.byName[name]; ok {
		return true
	}
	_, ok := r.callbacks[name]
	return ok
}

func (r *Registry) validate(d *Descriptor) error {
	seenOptional := false
	for i := range d.Args {
		spec := &d.Args[i]
		if spec.Name == "" {
			return fmt.Errorf("%s: argument %d has no name", d.Name, i+1)
		}
		if spec.Kind == ArgEnum && spec.Enum == nil {
			return fmt.Errorf("%s: argument %s: enum kind without enum table", d.Name, spec.Name)
		}
		if spec.Kind.IsOut() {
			// an out-ref holds its position whether or not the script asks
			// for write-back, so later required arguments stay addressable
		} else if spec.Optional {
			seenOptional = true
		} else if seenOptional {
			return fmt.Errorf("%s: required argument %s follows an optional one", d.Name, spec.Name)
		}
		if spec.Optional && !spec.Kind.IsOut() && !spec.Default.IsNil() {
			// defaults must decode under the argument's own kind
			var scratch argValue
			if err := coerceArg(d.Name, i, spec, spec.Default, &scratch); err != nil {
				return fmt.Errorf("%s: argument %s: bad default: %w", d.Name, spec.Name, err)
			}
		}
	}
	if err := r.checkSlot(d.Name, d.Open != nil, func() Slot { return d.Open.Slot }); err != nil {
		return err
	}
	return r.checkSlot(d.Name, d.Close != nil, func() Slot { return d.Close.Slot })
}

func (r *Registry) checkSlot(name string, bound bool, slot func() Slot) error {
	if !bound {
		return nil
	}
	if s := slot(); s < 0 || int(s) >= r.slots.Len() {
		return fmt.Errorf("%s: slot %d is not registered", name, int(s))
	}
	return nil
}

// Lookup returns the descriptor for a name, or nil if the name is unbound
// or bound to a callback.
func (r *Registry) Lookup(name string) *Descriptor {
	return r.byName[name]
}

// Names returns every bound name in registration order. The catalogue is
// deliberately enumerable so tooling and tests can walk the whole surface.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Slots returns the slot table backing this registry.
func (r *Registry) Slots() *SlotTable { return r.slots }

// NewTracker creates a shadow-stack tracker for one script context.
func (r *Registry) NewTracker() *Tracker { return NewTracker(r.slots) }

// Call dispatches one script call by name.
func (r *Registry) Call(tr *Tracker, name string, args []script.Value) ([]script.Value, error) {
	if d, ok := r.byName[name]; ok {
		return d.invoke(tr, args)
	}
	if cb, ok := r.callbacks[name]; ok {
		return cb(args)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}
