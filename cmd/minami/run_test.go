package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadDump(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doclets.json")
	dump := `[
		{"kind": "class", "name": "Shape", "longname": "Shape"},
		{"kind": "function", "name": "area", "longname": "Shape#area", "memberof": "Shape"}
	]`
	if err := os.WriteFile(path, []byte(dump), 0o644); err != nil {
		t.Fatal(err)
	}

	doclets, err := readDump(path)
	if err != nil {
		t.Fatalf("readDump() error = %v", err)
	}
	if len(doclets) != 2 {
		t.Fatalf("readDump() returned %d doclets, want 2", len(doclets))
	}
	if doclets[0].Longname != "Shape" || doclets[1].Memberof != "Shape" {
		t.Errorf("decoded doclets = %+v, %+v", doclets[0], doclets[1])
	}
}

func TestReadDumpErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty path",
			setup:   func(t *testing.T) string { return "" },
			wantErr: ErrNoDump,
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.json")
			},
			wantErr: ErrReadDump,
		},
		{
			name: "invalid json",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "bad.json")
				if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
					t.Fatal(err)
				}
				return path
			},
			wantErr: ErrParseDump,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := readDump(tt.setup(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("readDump() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	confPath := filepath.Join(dir, "conf.yaml")
	readmePath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(confPath, []byte("destination: from-conf\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(readmePath, []byte("# Readme"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := resolveOptions(&cliFlags{conf: confPath, dest: "from-flag", readme: readmePath})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if opts.Destination != "from-flag" {
		t.Errorf("Destination = %q, flag should override conf", opts.Destination)
	}
	if opts.Readme != "# Readme" {
		t.Errorf("Readme = %q, want file contents", opts.Readme)
	}
}

func TestResolveOptionsConfReadmePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	confPath := filepath.Join(dir, "conf.yaml")
	readmePath := filepath.Join(dir, "README.md")
	conf := "destination: out\nreadme: " + readmePath + "\n"
	if err := os.WriteFile(confPath, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(readmePath, []byte("conf readme"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := resolveOptions(&cliFlags{conf: confPath})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if opts.Readme != "conf readme" {
		t.Errorf("Readme = %q, want contents of conf-referenced file", opts.Readme)
	}
}

func TestResolveOptionsMissingReadme(t *testing.T) {
	t.Parallel()

	_, err := resolveOptions(&cliFlags{readme: filepath.Join(t.TempDir(), "missing.md")})
	if !errors.Is(err, ErrReadme) {
		t.Errorf("resolveOptions() error = %v, want ErrReadme", err)
	}
}
