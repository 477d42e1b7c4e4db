package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/dvserialize/pkg/config"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "dvserialize-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	configYAML := `
ignore_patterns:
  - "templates/**"
dry_run: true
`
	configPath := filepath.Join(dir, ".dvserialize.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(context.Background(), configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)

	// Output:
	// ignore=[templates/**] dry_run=true diff=false
}

func ExampleDiscover() {
	dir, err := os.MkdirTemp("", "dvserialize-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg, err := config.Discover(context.Background(), dir, "")
	if err != nil {
		fmt.Printf("Error discovering config: %v\n", err)
		return
	}

	fmt.Printf("location=%q %s\n", cfg.Location(), cfg)

	// Output:
	// location="" ignore=[] dry_run=false diff=false
}
