package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    cliFlags
		wantErr bool
	}{
		{
			name: "long flags",
			args: []string{"minami", "--conf", "conf.yaml", "--dump", "doclets.json", "--dest", "out"},
			want: cliFlags{conf: "conf.yaml", dump: "doclets.json", dest: "out"},
		},
		{
			name: "short flags",
			args: []string{"minami", "-c", "conf.yaml", "-i", "-", "-d", "out", "-v"},
			want: cliFlags{conf: "conf.yaml", dump: "-", dest: "out", verbose: true},
		},
		{
			name: "readme and tutorials",
			args: []string{"minami", "-i", "d.json", "--readme", "README.md", "-u", "tutorials"},
			want: cliFlags{dump: "d.json", readme: "README.md", tutorials: "tutorials"},
		},
		{
			name: "version",
			args: []string{"minami", "--version"},
			want: cliFlags{version: true},
		},
		{
			name:    "positional arguments rejected",
			args:    []string{"minami", "stray"},
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"minami", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("parseFlags() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
