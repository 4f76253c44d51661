// Package config loads emulator profiles: HCL files that add constants,
// register extra names for existing intrinsic functions and override the
// emulated process environment.
//
// A profile file may contain any number of the following blocks:
//
//	constant "wsPath" {
//	  value = "C:\\Windows\\System32\\wscript.exe"
//	}
//
//	alias "ShellExecute" {
//	  function = "shell"
//	}
//
//	environment "USERNAME" {
//	  value = "analyst"
//	}
//
// Profiles are loaded into a format-agnostic Profile and applied to a
// registry and constant table before any macro code is evaluated.
package config
