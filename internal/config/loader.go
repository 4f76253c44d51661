package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/vbaemu/internal/ctxlog"
	"github.com/vk/vbaemu/internal/value"
)

// HCLLoader is the HCL implementation of the Loader interface.
type HCLLoader struct{}

// NewLoader creates a new HCL profile loader.
func NewLoader() *HCLLoader {
	return &HCLLoader{}
}

// fileRoot decodes all possible top-level blocks from any profile file.
type fileRoot struct {
	Constants []*constantBlock `hcl:"constant,block"`
	Aliases   []*aliasBlock    `hcl:"alias,block"`
	Variables []*variableBlock `hcl:"environment,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type constantBlock struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value"`
	Body  hcl.Body       `hcl:",body"`
}

type aliasBlock struct {
	Name     string   `hcl:"name,label"`
	Function string   `hcl:"function"`
	Body     hcl.Body `hcl:",body"`
}

type variableBlock struct {
	Name  string   `hcl:"name,label"`
	Value string   `hcl:"value"`
	Body  hcl.Body `hcl:",body"`
}

// Load parses every .hcl file under paths, in the order found, and merges
// their blocks. Paths that do not exist are skipped.
func (l *HCLLoader) Load(ctx context.Context, paths ...string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Profile loader started.", "path_count", len(paths))

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	profile := &Profile{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse profile %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode profile %s: %w", file, diags)
		}

		for _, block := range root.Constants {
			c, err := translateConstant(block)
			if err != nil {
				return nil, err
			}
			profile.Constants = append(profile.Constants, c)
		}
		for _, block := range root.Aliases {
			profile.Aliases = append(profile.Aliases, &Alias{
				Name:      block.Name,
				Function:  block.Function,
				DeclRange: block.Body.MissingItemRange(),
			})
		}
		for _, block := range root.Variables {
			profile.Environment = append(profile.Environment, &Variable{
				Name:      block.Name,
				Value:     block.Value,
				DeclRange: block.Body.MissingItemRange(),
			})
		}
	}

	logger.Debug("Profile loading complete.", "constants", len(profile.Constants), "aliases", len(profile.Aliases), "environment", len(profile.Environment))
	return profile, nil
}

// translateConstant evaluates the value expression without any variables or
// functions, so only literals are accepted.
func translateConstant(block *constantBlock) (*Constant, error) {
	declRange := block.Body.MissingItemRange()
	raw, diags := block.Value.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("constant %q at %s: %w", block.Name, declRange, diags)
	}
	v, err := value.FromCty(raw)
	if err != nil {
		return nil, fmt.Errorf("constant %q at %s: %w", block.Name, declRange, err)
	}
	return &Constant{Name: block.Name, Value: v, DeclRange: declRange}, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
