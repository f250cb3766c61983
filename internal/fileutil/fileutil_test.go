package fileutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "x")

	if !FileExists(file) {
		t.Error("FileExists() = false for regular file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists() = true for missing path")
	}
}

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "payload")

	dst := filepath.Join(dir, "nested", "deeper", "dst.txt")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("copied content = %q", got)
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Error("CopyFile() expected error for missing source")
	}
}

func TestCopyFS(t *testing.T) {
	t.Parallel()

	src := fstest.MapFS{
		"styles/site.css":  {Data: []byte("body{}")},
		"scripts/site.js":  {Data: []byte("void 0")},
		"fonts/a/b/c.woff": {Data: []byte("font")},
	}

	dst := t.TempDir()
	if err := CopyFS(src, dst, DefaultScanDepth); err != nil {
		t.Fatalf("CopyFS() error = %v", err)
	}

	for path, want := range map[string]string{
		"styles/site.css":  "body{}",
		"scripts/site.js":  "void 0",
		"fonts/a/b/c.woff": "font",
	} {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(path)))
		if err != nil {
			t.Errorf("reading %s: %v", path, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s content = %q, want %q", path, got, want)
		}
	}
}

func TestCopyFSDepthBound(t *testing.T) {
	t.Parallel()

	src := fstest.MapFS{
		"keep.txt":       {Data: []byte("a")},
		"a/b/c/deep.txt": {Data: []byte("b")},
	}

	dst := t.TempDir()
	if err := CopyFS(src, dst, 1); err != nil {
		t.Fatalf("CopyFS() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "keep.txt")); err != nil {
		t.Errorf("shallow file not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "a", "b", "c", "deep.txt")); err == nil {
		t.Error("file beyond depth bound was copied")
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "site.css"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	writeFile(t, filepath.Join(root, "img", "logo.png"), "")
	writeFile(t, filepath.Join(root, "img", "draft-logo.png"), "")

	tests := []struct {
		name    string
		include string
		exclude string
		want    int
	}{
		{name: "no filters", want: 4},
		{name: "include only css and png", include: `\.(css|png)$`, want: 3},
		{name: "exclude drafts", exclude: `draft`, want: 3},
		{name: "include and exclude combined", include: `\.png$`, exclude: `draft`, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var include, exclude *regexp.Regexp
			if tt.include != "" {
				include = regexp.MustCompile(tt.include)
			}
			if tt.exclude != "" {
				exclude = regexp.MustCompile(tt.exclude)
			}

			files, err := Scan(root, DefaultScanDepth, include, exclude)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if len(files) != tt.want {
				t.Errorf("Scan() returned %d files %v, want %d", len(files), files, tt.want)
			}
		})
	}
}

func TestScanFileRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "single.css")
	writeFile(t, file, "")

	files, err := Scan(file, DefaultScanDepth, nil, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 || files[0] != file {
		t.Errorf("Scan(file) = %v, want the file itself", files)
	}

	files, err = Scan(file, DefaultScanDepth, regexp.MustCompile(`\.png$`), nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Scan(file) with non-matching include = %v, want empty", files)
	}
}

func TestScanDepthBound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.txt"), "")
	writeFile(t, filepath.Join(root, "a", "mid.txt"), "")
	writeFile(t, filepath.Join(root, "a", "b", "deep.txt"), "")

	files, err := Scan(root, 2, nil, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Scan() depth 2 returned %v, want top.txt and a/mid.txt", files)
	}
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Scan(filepath.Join(t.TempDir(), "missing"), DefaultScanDepth, nil, nil)
	if err == nil {
		t.Error("Scan() expected error for missing root")
	}
}
