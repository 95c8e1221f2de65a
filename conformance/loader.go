package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedSuite is a suite together with the file it was loaded from
type LoadedSuite struct {
	File  string
	Suite TestSuite
}

// LoadSuites walks a directory and loads every .yaml test suite in it
func LoadSuites(dir string) ([]LoadedSuite, error) {
	var loaded []LoadedSuite

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := LoadSuiteFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = path
		}
		loaded = append(loaded, LoadedSuite{File: relPath, Suite: suite})
		return nil
	})

	if err != nil {
		return nil, err
	}
	return loaded, nil
}

// LoadSuiteFile parses a single YAML suite file
func LoadSuiteFile(path string) (TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestSuite{}, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
