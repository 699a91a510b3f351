package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string) // setup function to prepare test
		wantErr error
	}{
		{
			name:  "create_new_config",
			force: false,
			setup: nil, // no pre-existing file
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name:  "fail_without_force",
			force: false,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			var cli struct {
				Strict   bool `name:"strict"`
				MaxDepth int  `default:"1000" name:"max-depth"`
			}

			parser, err := kong.New(&cli, kong.Vars{
				ConfigIdentifier: confPath,
			})
			if err != nil {
				t.Fatal(err)
			}

			kctx, err := parser.Parse([]string{"--strict"})
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithContext(context.Background(), kctx)

			err = (&Init{Force: tt.force}).Run(ctx)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				if !errors.Is(err, ErrWriteConfig) {
					t.Errorf("Init.Run() error = %v, want wrapped by %v", err, ErrWriteConfig)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(content, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, content)
			}

			if got["strict"] != true {
				t.Errorf("strict = %v, want true", got["strict"])
			}

			if fmt.Sprint(got["max-depth"]) != "1000" {
				t.Errorf("max-depth = %#v, want 1000", got["max-depth"])
			}
		})
	}
}

func TestInitCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	confPath := filepath.Join(t.TempDir(), "nested", "lamb", "config.yaml")

	var cli struct{}

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	kctx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := (&Init{}).Run(WithContext(t.Context(), kctx)); err != nil {
		t.Fatalf("Init.Run() error = %v", err)
	}

	if _, err := os.Stat(confPath); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

// TestInitSettings tests that settings skips ignored and empty flags.
func TestInitSettings(t *testing.T) {
	t.Parallel()

	var cli struct {
		Verbose bool     `help:"Enable verbose output" name:"verbose"`
		Output  string   `help:"Output file"           name:"output"`
		Empty   string   `help:"Unset string"          name:"empty"`
		Count   int      `help:"Number of items"       name:"count"`
		Tags    []string `help:"Tags"                  name:"tags"`
		Secret  string   `hidden:""                    name:"secret"`
		Mode    string   `name:"pprof-mode"`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatal(err)
	}

	kctx, err := parser.Parse([]string{
		"--verbose", "--output=test.txt", "--count=5",
		"--tags=a,b", "--secret=x", "--pprof-mode=cpu",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := (&Init{}).settings(kctx)

	want := map[string]any{
		"verbose": true,
		"output":  "test.txt",
		"count":   int64(5),
		"tags":    []any{"a", "b"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("settings() = %#v, want %#v", got, want)
	}
}

// TestInitFlagValue tests flagValue with different types.
func TestInitFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		want   any
		wantOK bool
	}{
		{"nil", nil, nil, false},
		{"bool_true", true, true, true},
		{"bool_false", false, false, true},
		{"string_value", "test", "test", true},
		{"empty_string", "", "", false},
		{"int", 42, int64(42), true},
		{"uint8", uint8(7), uint64(7), true},
		{"float", 1.5, 1.5, true},
		{"string_slice", []string{"a", "b"}, []any{"a", "b"}, true},
		{"empty_slice", []string{}, nil, false},
		{"slice_of_empty", []string{""}, []any{}, false},
		{"struct", struct{}{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := flagValue(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("flagValue(%#v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}

			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("flagValue(%#v) = %#v, want %#v", tt.value, got, tt.want)
			}
		})
	}
}
