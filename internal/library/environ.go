package library

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/registry"
	"github.com/vk/vbaemu/internal/value"
)

// DefaultEnvironment returns the environment of an unremarkable Windows
// workstation, keyed by upper-case name. Each call returns a new map.
func DefaultEnvironment() map[string]string {
	return map[string]string{
		"ALLUSERSPROFILE":        `C:\ProgramData`,
		"APPDATA":                `C:\Users\user\AppData\Roaming`,
		"COMPUTERNAME":           "DESKTOP-01",
		"COMSPEC":                `C:\Windows\system32\cmd.exe`,
		"HOMEDRIVE":              "C:",
		"HOMEPATH":               `\Users\user`,
		"LOCALAPPDATA":           `C:\Users\user\AppData\Local`,
		"OS":                     "Windows_NT",
		"PATH":                   `C:\Windows\system32;C:\Windows;C:\Windows\System32\WindowsPowerShell\v1.0\`,
		"PROCESSOR_ARCHITECTURE": "AMD64",
		"PROGRAMDATA":            `C:\ProgramData`,
		"PROGRAMFILES":           `C:\Program Files`,
		"PUBLIC":                 `C:\Users\Public`,
		"SYSTEMDRIVE":            "C:",
		"SYSTEMROOT":             `C:\Windows`,
		"TEMP":                   `C:\Users\user\AppData\Local\Temp`,
		"TMP":                    `C:\Users\user\AppData\Local\Temp`,
		"USERDOMAIN":             "DESKTOP-01",
		"USERNAME":               "user",
		"USERPROFILE":            `C:\Users\user`,
		"WINDIR":                 `C:\Windows`,
	}
}

// Environ reads the emulated environment held in registry.Env.
// Environ(envstring) returns the value of the named variable, or "" when it
// is not set. Environ(number) returns the number-th "NAME=value" entry in
// name order, or "" past the end.
type Environ struct{}

func (Environ) Name() string { return "Environ" }

func (u Environ) Evaluate(ctx context.Context, env *registry.Env, args []value.Value) (value.Value, error) {
	logger := ctxlog.FromContext(ctx)
	if err := checkArity(u.Name(), args, 1, 1); err != nil {
		return value.Null, err
	}
	if err := nonNullArg(u.Name(), args, 0); err != nil {
		return value.Null, err
	}
	var vars map[string]string
	if env != nil {
		vars = env.Environment
	}

	if n, ok := args[0].Integer(); ok {
		if n < 1 {
			return value.Null, &InvalidArgumentError{
				Function: u.Name(),
				Position: 1,
				Code:     CodeInvalidCall,
				Reason:   fmt.Sprintf("entry number must be at least 1, got %d", n),
			}
		}
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)
		if n > int64(len(names)) {
			return value.Text(""), nil
		}
		name := names[n-1]
		return value.Text(name + "=" + vars[name]), nil
	}

	name, err := textArg(u.Name(), args, 0)
	if err != nil {
		return value.Null, err
	}
	v, ok := vars[strings.ToUpper(name)]
	logger.Debug("Environment variable read.", "unit", u.Name(), "name", name, "found", ok)
	return value.Text(v), nil
}
