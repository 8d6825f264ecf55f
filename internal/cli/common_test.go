package cli

import "testing"

func TestProducerFormat(t *testing.T) {
	got := Producer("dwarfgen", "x86_32-linux")
	want := "dwarfgen 0.3.1 (x86_32-linux)"
	if got != want {
		t.Fatalf("Producer = %q, want %q", got, want)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != "0.3.1" {
		t.Errorf("Version = %q, want %q", info.Version, "0.3.1")
	}
	if info.GoVersion == "" || info.Platform == "" || info.Arch == "" {
		t.Errorf("incomplete build info: %+v", info)
	}
}
