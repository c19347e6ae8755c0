// Package oop provides a minimal object system with single parent inheritance and
// runtime membership tests. A Class is an immutable, named member table with an
// optional parent; an Object is an instance of exactly one Class carrying its own
// attribute state. Parent members are copied down into the child at class creation
// time unless the child redefines them; the parent link itself remains, so that
// InstanceOf can walk the ancestor chain comparing identity.
package oop

import (
	"sort"

	"github.com/J4kubS/Moony/hash"
	"github.com/lyraproj/issue/issue"
)

type (
	// Value is the member and attribute value type
	Value = interface{}

	// Method is a callable class member. The receiving object is always passed first,
	// followed by the arguments of the call site.
	Method func(self *Object, args ...Value) Value

	Class struct {
		name    string
		parent  *Class
		members *hash.StringHash
	}

	Object struct {
		class *Class
		attrs *hash.StringHash
	}
)

// initMember is invoked by New on every freshly created instance, when defined
const initMember = `init`

// NewClass creates a class with the given name, optional parent, and members. Every
// member of the parent that is not redefined in members is copied into the new class.
// The resulting member table is frozen; classes never change after creation.
func NewClass(name string, parent *Class, members map[string]Value) *Class {
	table := hash.NewStringHash(len(members) + 4)

	// own members first, in deterministic order
	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		table.Put(n, members[n])
	}

	if parent != nil {
		parent.members.EachPair(func(n string, m interface{}) {
			if !table.Includes(n) {
				table.Put(n, m)
			}
		})
	}
	table.Freeze()
	return &Class{name, parent, table}
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Parent() *Class {
	return c.parent
}

// Member returns the member with the given name, or nil and false when the class does
// not define it
func (c *Class) Member(name string) (Value, bool) {
	return c.members.Get3(name)
}

// Members returns the frozen member table of this class
func (c *Class) Members() *hash.StringHash {
	return c.members
}

// New creates a fresh instance of this class. When the class defines an 'init' member
// that is a Method, it is invoked with the new object and the given arguments before
// the object is returned.
func (c *Class) New(args ...Value) *Object {
	if c == nil {
		panic(issue.NewReported(NotAClass, issue.SEVERITY_ERROR, issue.H{`value`: `nil`}, nil))
	}
	o := &Object{c, hash.NewStringHash(4)}
	if m, ok := c.members.Get3(initMember); ok {
		if f, ok := m.(Method); ok {
			f(o, args...)
		}
	}
	return o
}

// ClassOf returns true if the given value is an instance of this class or of a class
// that has this class among its ancestors. It is safe to probe arbitrary values;
// anything that is not an Object yields false rather than a failure.
func (c *Class) ClassOf(value interface{}) bool {
	if o, ok := value.(*Object); ok {
		return o.InstanceOf(c)
	}
	return false
}

func (o *Object) Class() *Class {
	return o.class
}

// InstanceOf walks the class of this object and its ancestor chain, comparing each
// class by identity
func (o *Object) InstanceOf(c *Class) bool {
	for t := o.class; t != nil; t = t.parent {
		if t == c {
			return true
		}
	}
	return false
}

// Get returns the named per-instance attribute when set, falling back to the class
// member table
func (o *Object) Get(name string) (Value, bool) {
	if v, ok := o.attrs.Get3(name); ok {
		return v, true
	}
	return o.class.members.Get3(name)
}

// Set assigns per-instance attribute state. It never affects the class
func (o *Object) Set(name string, value Value) {
	o.attrs.Put(name, value)
}

// Call invokes the named Method member with this object as the receiver. A name that
// does not resolve to a Method raises MOONY_NOT_A_METHOD.
func (o *Object) Call(name string, args ...Value) Value {
	if m, ok := o.Get(name); ok {
		if f, ok := m.(Method); ok {
			return f(o, args...)
		}
	}
	panic(issue.NewReported(NotAMethod, issue.SEVERITY_ERROR, issue.H{`name`: name, `class`: o.class.name}, nil))
}
