package config

import (
	"os"
	"testing"
)

func TestLocalConfigExists(t *testing.T) {
	t.Chdir(t.TempDir())

	if LocalConfigExists() {
		t.Error("expected no local config in an empty directory")
	}

	if err := os.WriteFile(".session.json", []byte("{}"), FilePermissions); err != nil {
		t.Fatal(err)
	}
	if !LocalConfigExists() {
		t.Error("expected local config with .session.json present")
	}

	if err := os.Remove(".session.json"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(".profiles.json", []byte("[]"), FilePermissions); err != nil {
		t.Fatal(err)
	}
	if !LocalConfigExists() {
		t.Error("expected local config with .profiles.json present")
	}
}

func TestGetFilePathsPreferLocalFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	origSession, origProfiles := SessionFile, ProfilesFile
	t.Cleanup(func() {
		SessionFile, ProfilesFile = origSession, origProfiles
	})
	SessionFile = "/global/.session.json"
	ProfilesFile = "/global/.profiles.json"

	if got := GetSessionFilePath(); got != SessionFile {
		t.Errorf("got %q, want global path without a local file", got)
	}

	if err := os.WriteFile(".session.json", []byte("{}"), FilePermissions); err != nil {
		t.Fatal(err)
	}
	if got := GetSessionFilePath(); got != ".session.json" {
		t.Errorf("got %q, want local session file to win", got)
	}

	if got := GetProfilesFilePath(); got != ProfilesFile {
		t.Errorf("got %q, want global path without a local file", got)
	}
	if err := os.WriteFile(".profiles.json", []byte("[]"), FilePermissions); err != nil {
		t.Fatal(err)
	}
	if got := GetProfilesFilePath(); got != ".profiles.json" {
		t.Errorf("got %q, want local profiles file to win", got)
	}
}
