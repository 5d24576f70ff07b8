// Package flagx lets several components share os.Args without tripping over
// each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// Set names the flags one component owns. Valued flags may take their value
// as the next argument; Switches are boolean and never consume a following
// argument.
type Set struct {
	Valued   []string
	Switches []string
}

// Filter returns the arguments in args that belong to s, in order.
//
// Recognized forms:
//
//	-name value
//	-name=value
//	--name value
//	-switch
//
// Single and double dash spellings are equivalent.
func (s Set) Filter(args []string) []string {
	valued := names(s.Valued)
	switches := names(s.Switches)

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		name = normalize(name)

		if _, ok := switches[name]; ok {
			filtered = append(filtered, arg)
			continue
		}
		if _, ok := valued[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// FilterArgs keeps only the valued flags in allowed together with their values.
func FilterArgs(args []string, allowed []string) []string {
	return Set{Valued: allowed}.Filter(args)
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// The last occurrence wins; an empty string means no file was requested.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	fs.SetOutput(discard{})
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

func names(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, n := range list {
		m[normalize(n)] = struct{}{}
	}
	return m
}

func normalize(name string) string {
	return "-" + strings.TrimLeft(name, "-")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
