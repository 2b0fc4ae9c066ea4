package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	services, stylesDir, _ := newTestServices(t)
	d, stdout, _, exitCode := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	output := stdout.String()
	for _, want := range []string{
		"Configuration for styleforge",
		"Status:          No config file (using defaults)",
		"Styles Dir:      " + stylesDir,
		"Default Style:   (unset)",
		"Default Theme:   (style default)",
		"Tip: Run 'styleforge config init'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
	if *exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", *exitCode)
	}
}

func TestShowConfig_FileExists(t *testing.T) {
	services, _, _ := newTestServices(t)
	if err := services.Config.Init(); err != nil {
		t.Fatal(err)
	}

	d, stdout, _, _ := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	showConfig()

	output := stdout.String()
	if !strings.Contains(output, "Status:          File exists (using custom configuration)") {
		t.Errorf("Expected file-exists status, got: %s", output)
	}
	if strings.Contains(output, "Tip: Run 'styleforge config init'") {
		t.Errorf("Tip should not be shown when the config file exists, got: %s", output)
	}
}

func TestInitConfig(t *testing.T) {
	services, _, _ := newTestServices(t)
	d, stdout, _, exitCode := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	initConfig()

	if !strings.Contains(stdout.String(), "Created "+services.Config.GetPath()) {
		t.Errorf("Expected creation report, got: %s", stdout.String())
	}
	if _, err := os.Stat(services.Config.GetPath()); err != nil {
		t.Errorf("Config file not created: %v", err)
	}
	if *exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", *exitCode)
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	services, _, _ := newTestServices(t)
	if err := services.Config.Init(); err != nil {
		t.Fatal(err)
	}

	d, _, stderr, exitCode := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	initConfig()

	if !strings.Contains(stderr.String(), "Error: Failed to create config file") {
		t.Errorf("Expected error on stderr, got: %s", stderr.String())
	}
	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
}
