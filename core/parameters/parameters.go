/*
Package parameters holds the parameters which steer a compilation.

Parameters have built-in defaults and may be loaded from an application
configuration. Keys in a configuration are prefixed with "mdhtml.", e.g.

   mdhtml.sanitize = true
   mdhtml.entities = numbers
   mdhtml.maxdepth = 500

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/schuko"
)

// CompileParameter is a key for a compilation parameter.
type CompileParameter int

const (
	none CompileParameter = iota
	P_SANITIZE
	P_ENTITIES
	P_MAXDEPTH
	P_STOPPER
)

var parameterNames = [...]string{"none", "sanitize", "entities", "maxdepth", "stopper"}

func (p CompileParameter) String() string {
	if p < 0 || int(p) >= len(parameterNames) {
		return "CompileParameter(" + strconv.Itoa(int(p)) + ")"
	}
	return parameterNames[p]
}

// Key returns the configuration key for a parameter.
func (p CompileParameter) Key() string {
	return "mdhtml." + p.String()
}

// Entity modes for parameter P_ENTITIES.
const (
	EntitiesEscape  = "escape"  // escape dangerous characters only
	EntitiesNumbers = "numbers" // additionally encode non-ASCII as numeric references
)

// Registers holds a value for every compile parameter.
type Registers struct {
	base [P_STOPPER]interface{}
}

// NewRegisters creates a register set initialized to defaults.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_SANITIZE] = false          // a bool
	p[P_ENTITIES] = EntitiesEscape // a string
	p[P_MAXDEPTH] = 0              // an int, 0 = unbounded
}

// FromConfiguration creates a register set from defaults, overwritten by
// every parameter set in conf. conf may be nil.
func FromConfiguration(conf schuko.Configuration) (*Registers, error) {
	regs := NewRegisters()
	if conf == nil {
		return regs, nil
	}
	for p := none + 1; p < P_STOPPER; p++ {
		v := strings.TrimSpace(conf.GetString(p.Key()))
		if v == "" {
			continue
		}
		tracer().Debugf("config[%s] = %s", p.Key(), v)
		if err := regs.Set(p, v); err != nil {
			return nil, err
		}
	}
	return regs, nil
}

// Set parses value as a string for parameter key and stores it.
func (regs *Registers) Set(key CompileParameter, value string) error {
	switch key {
	case P_SANITIZE:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "parameter %s expects a boolean, got %q", key, value)
		}
		regs.Push(key, b)
	case P_ENTITIES:
		v := strings.ToLower(value)
		if v != EntitiesEscape && v != EntitiesNumbers {
			return core.Error(core.EINVALID, "parameter %s must be %q or %q, got %q",
				key, EntitiesEscape, EntitiesNumbers, value)
		}
		regs.Push(key, v)
	case P_MAXDEPTH:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return core.WrapError(err, core.EINVALID, "parameter %s expects a non-negative integer, got %q", key, value)
		}
		regs.Push(key, n)
	default:
		return core.Error(core.EINVALID, "unknown compile parameter %d", int(key))
	}
	return nil
}

// Push stores a value for a parameter.
func (regs *Registers) Push(key CompileParameter, value interface{}) {
	checkKey(key)
	regs.base[key] = value
}

// Get returns the value of a parameter.
func (regs *Registers) Get(key CompileParameter) interface{} {
	checkKey(key)
	return regs.base[key]
}

func checkKey(key CompileParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of compile parameters")
	}
}

// S returns a string parameter.
func (regs *Registers) S(key CompileParameter) string {
	return regs.Get(key).(string)
}

// N returns an integer parameter.
func (regs *Registers) N(key CompileParameter) int {
	return regs.Get(key).(int)
}

// B returns a boolean parameter.
func (regs *Registers) B(key CompileParameter) bool {
	return regs.Get(key).(bool)
}

// Clone returns an independent copy of regs.
func (regs *Registers) Clone() *Registers {
	c := *regs
	return &c
}
