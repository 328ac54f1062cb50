package loxvalue

import "fmt"

// Class is a Lox class: a name, an optional superclass, and its own
// (non-inherited) methods. Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return "<class " + c.Name + ">" }

// FindMethod looks up a method by name on this class, falling back to the
// superclass chain. It returns the unbound *Function; binding to a
// particular instance happens at the Get call site via Function.Bind.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init" if the class (or an ancestor) defines one,
// else zero: calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of the class and, if it defines an "init"
// method, runs it against the new instance before returning it.
func (c *Class) Call(call CallFn, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := call(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime instance of a Class: its own field values plus a
// pointer back to the class for method lookup.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (*Instance) Type() string     { return "instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get resolves a property access: fields shadow methods, methods are bound
// to this instance on lookup. Returns an error carrying just the bare Lox
// message; callers attach token/line context.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set assigns a field on the instance, creating it if absent. Lox allows
// setting any property name on an instance, not just ones declared by a
// class body (there are no field declarations).
func (i *Instance) Set(name string, val Value) {
	i.Fields[name] = val
}
