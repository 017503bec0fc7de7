package main

import (
	"os"
	"os/exec"
	"testing"
)

func TestMainVersionExitZero(t *testing.T) {
	if os.Getenv("HISTPICK_HELPER") == "1" {
		os.Args = []string{"histpick", "--version"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainVersionExitZero")
	cmd.Env = append(os.Environ(), "HISTPICK_HELPER=1")
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected exit 0, got error: %v", err)
	}
}

func TestMainInvalidArgsExitOne(t *testing.T) {
	if os.Getenv("HISTPICK_HELPER_INVALID") == "1" {
		os.Args = []string{"histpick", "--not-a-flag"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainInvalidArgsExitOne")
	cmd.Env = append(os.Environ(), "HISTPICK_HELPER_INVALID=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected non-zero exit, got nil error")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
}

func TestMainMissingHistoryExitOne(t *testing.T) {
	if os.Getenv("HISTPICK_HELPER_MISSING") == "1" {
		os.Args = []string{"histpick", "--shell", "bash", "--history-file", os.Getenv("HISTPICK_HELPER_PATH")}
		main()
		return
	}

	dir := t.TempDir()
	cmd := exec.Command(os.Args[0], "-test.run=TestMainMissingHistoryExitOne")
	cmd.Env = append(os.Environ(),
		"HISTPICK_HELPER_MISSING=1",
		"HISTPICK_HELPER_PATH="+dir+"/missing",
		"XDG_CONFIG_HOME="+dir,
		"HOME="+dir,
	)
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
}
