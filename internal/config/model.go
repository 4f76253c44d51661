package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/vbaemu/internal/value"
)

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads every profile file found under paths and merges them.
	Load(ctx context.Context, paths ...string) (*Profile, error)
}

// Profile is the merged result of one or more profile files.
type Profile struct {
	Constants   []*Constant
	Aliases     []*Alias
	Environment []*Variable
}

// Constant is a user-defined named value.
type Constant struct {
	Name      string
	Value     value.Value
	DeclRange hcl.Range
}

// Alias registers an existing function under an additional name.
type Alias struct {
	Name      string
	Function  string
	DeclRange hcl.Range
}

// Variable sets one entry of the emulated process environment.
type Variable struct {
	Name      string
	Value     string
	DeclRange hcl.Range
}
