// Package matrix expands a build intent into the concrete list of
// build variants for a platform.
package matrix

import (
	"github.com/presencekit/gridlock/internal/platform"
)

// Value is a build-system option value: either a boolean, rendered as
// ON/OFF, or a raw string passed through unchanged.
type Value struct {
	isBool bool
	b      bool
	s      string
}

// Bool returns a boolean option value.
func Bool(v bool) Value { return Value{isBool: true, b: v} }

// String returns a raw string option value.
func String(s string) Value { return Value{s: s} }

// Render returns the token handed to the build system.
func (v Value) Render() string {
	if v.isBool {
		if v.b {
			return "ON"
		}
		return "OFF"
	}
	return v.s
}

// Options maps option keys to values for one variant.
type Options map[string]Value

func (o Options) clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Intent is what the caller asked for, before normalization.
type Intent struct {
	Clean         bool
	Static        bool
	Shared        bool
	SkipFormatter bool
	JustRelease   bool
}

// Variant is one concrete build configuration. Immutable once
// produced; its name keys both the build scratch directory and the
// install subdirectory.
type Variant struct {
	Name        string
	Generator   string
	Options     Options
	JustRelease bool
}

// Normalize applies the defaulting rules: if neither link mode was
// requested both are built, and unattended runs never produce Debug
// configurations or run the source formatter.
func Normalize(in Intent, unattended bool) Intent {
	if !in.Static && !in.Shared {
		in.Static = true
		in.Shared = true
	}
	if unattended {
		in.JustRelease = true
		in.SkipFormatter = true
	}
	return in
}

// Expand produces the ordered variant list for the platform. Windows
// gets one variant per bitness per link mode; other platforms build at
// the host bitness only. Order is static before shared, 32 before 64.
func Expand(in Intent, p platform.Platform) []Variant {
	static := Options{}
	shared := Options{
		"BUILD_SHARED_LIBS": Bool(true),
		"USE_STATIC_CRT":    Bool(true),
	}
	if in.SkipFormatter {
		static["CLANG_FORMAT_SUFFIX"] = String("none")
		shared["CLANG_FORMAT_SUFFIX"] = String("none")
	}

	var out []Variant
	emit := func(name, generator string, opts Options) {
		out = append(out, Variant{
			Name:        name,
			Generator:   generator,
			Options:     opts.clone(),
			JustRelease: in.JustRelease,
		})
	}

	if p == platform.Windows {
		if in.Static {
			emit("win32-static", platform.GeneratorWin32, static)
			emit("win64-static", platform.GeneratorWin64, static)
		}
		if in.Shared {
			emit("win32-dynamic", platform.GeneratorWin32, shared)
			emit("win64-dynamic", platform.GeneratorWin64, shared)
		}
		return out
	}

	if in.Static {
		emit(p.String()+"-static", "", static)
	}
	if in.Shared {
		emit(p.String()+"-dynamic", "", shared)
	}
	return out
}
