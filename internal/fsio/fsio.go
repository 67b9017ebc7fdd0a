package fsio

import (
	"os"
)

// Hooks for filesystem operations
// used for testing
var (
	OpenFile   = os.OpenFile
	ReadFile   = os.ReadFile
	WriteFile  = os.WriteFile
	StatFile   = os.Stat
	ReadDir    = os.ReadDir
	RemoveAll  = os.RemoveAll
	MkdirAll   = os.MkdirAll
	IsNotExist = os.IsNotExist
	Exists     = func(path string) bool { _, err := StatFile(path); return err == nil }
	IsDir      = func(path string) bool { fi, err := StatFile(path); return err == nil && fi.IsDir() }
)
