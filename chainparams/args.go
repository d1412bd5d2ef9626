package chainparams

import (
	"strconv"
	"strings"
)

// Args is the operator configuration consulted by the devnet and regtest
// constructors. Names are given without a leading dash.
type Args interface {
	IsArgSet(name string) bool
	GetArg(name, def string) string
	GetArgs(name string) []string
	GetBoolArg(name string, def bool) bool
}

// MapArgs is an in-memory Args. The last value of an option wins for GetArg.
type MapArgs map[string][]string

func NewMapArgs() MapArgs { return MapArgs{} }

// Set appends values to name. Returns the map for chaining.
func (m MapArgs) Set(name string, values ...string) MapArgs {
	name = strings.TrimPrefix(name, "-")
	m[name] = append(m[name], values...)
	return m
}

func (m MapArgs) IsArgSet(name string) bool {
	_, ok := m[name]
	return ok
}

func (m MapArgs) GetArg(name, def string) string {
	values := m[name]
	if len(values) == 0 {
		return def
	}
	return values[len(values)-1]
}

func (m MapArgs) GetArgs(name string) []string {
	return append([]string(nil), m[name]...)
}

func (m MapArgs) GetBoolArg(name string, def bool) bool {
	values, ok := m[name]
	if !ok {
		return def
	}
	if len(values) == 0 {
		return true
	}
	return InterpretBool(values[len(values)-1])
}

// InterpretBool treats a bare flag as true and any non-zero number as true.
func InterpretBool(s string) bool {
	if s == "" {
		return true
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n != 0
}
