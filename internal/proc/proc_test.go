package proc

import (
	"errors"
	"os"
	"testing"
)

func TestNameRejectsInvalidPid(t *testing.T) {
	for _, pid := range []int{0, -1} {
		if _, err := Name(pid); !errors.Is(err, ErrNotFound) {
			t.Fatalf("pid %d: expected ErrNotFound, got %v", pid, err)
		}
	}
}

func TestNameOfCurrentProcess(t *testing.T) {
	name, err := Name(os.Getpid())
	if err != nil {
		t.Skipf("process lookup unavailable: %v", err)
	}
	if name == "" {
		t.Fatalf("expected a process name")
	}
}

func TestCleanName(t *testing.T) {
	cases := map[string]string{
		"zsh":                           "zsh",
		"-bash":                         "bash",
		"/usr/local/bin/fish\n":         "fish",
		`C:\Program Files\Git\bash.exe`: "bash",
		"  ":                            "",
	}
	for in, want := range cases {
		if got := cleanName(in); got != want {
			t.Fatalf("cleanName(%q)=%q want %q", in, got, want)
		}
	}
}
