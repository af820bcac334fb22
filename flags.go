package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet wraps flag.FlagSet to add support for hex-friendly uint32 flags.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior.
func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// Uint32Var defines a uint32 flag that also accepts 0x-prefixed hex, which
// is how field moduli are usually written.
func (fs *flagSet) Uint32Var(p *uint32, name string, value uint32, usage string) {
	fs.FlagSet.Var(&uint32Value{p: p}, name, usage)
	*p = value
}

// uint32Value implements flag.Value for uint32 flags.
type uint32Value struct {
	p *uint32
}

func (v *uint32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return fmt.Sprintf("%#x", *v.p)
}

func (v *uint32Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid uint32 value %q", s)
	}
	*v.p = uint32(n)
	return nil
}
