package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "apod98 dev\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestGetRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"get", "2024-05-01", "2024-05-02"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "accepts at most 1 arg") {
		t.Fatalf("err = %v, want arg count error", err)
	}
}

func TestGetHasJSONFlag(t *testing.T) {
	cmd := newRootCmd()
	get, _, err := cmd.Find([]string{"get"})
	if err != nil {
		t.Fatalf("Find(get): %v", err)
	}
	if get.Flags().Lookup("json") == nil {
		t.Fatalf("get has no --json flag")
	}
	for _, name := range []string{"config", "lang"} {
		if get.InheritedFlags().Lookup(name) == nil {
			t.Fatalf("get does not inherit --%s", name)
		}
	}
}

func TestFlagValidation(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"pt", []string{"version", "--lang", "pt"}, ""},
		{"region suffix", []string{"version", "--lang", "pt-BR"}, ""},
		{"unknown language", []string{"version", "--lang", "fr"}, "unsupported --lang"},
		{"unknown theme", []string{"--theme", "Dracula"}, "unknown --theme"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Execute: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestFlagHelpNamesDefaultsAndChoices(t *testing.T) {
	cmd := newRootCmd()
	checks := map[string]string{
		"config": "~/.config/apod98/config.toml",
		"prefs":  "~/.config/apod98/prefs.toml",
		"lang":   "en, pt",
		"theme":  "Win98, Slate, Nightfox",
	}
	for name, want := range checks {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if f == nil {
			t.Fatalf("flag --%s missing", name)
		}
		if !strings.Contains(f.Usage, want) {
			t.Fatalf("--%s usage = %q, want it to mention %q", name, f.Usage, want)
		}
	}
}
