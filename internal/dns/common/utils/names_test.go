package utils

import "testing"

func TestCanonicalDNSName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Example.COM.", "example.com"},
		{"  www.example.com  ", "www.example.com"},
		{"example.com..", "example.com"},
		{".", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalDNSName(tt.in); got != tt.want {
			t.Errorf("CanonicalDNSName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name, in, origin, want string
	}{
		{"at sign", "@", "example.com.", "example.com."},
		{"at sign without origin", "@", "", "@"},
		{"relative", "www", "example.com.", "www.example.com."},
		{"absolute", "mail.example.net.", "example.com.", "mail.example.net."},
		{"no origin", "www", "", "www"},
		{"root origin", "www", ".", "www."},
		{"multi label", "a.b", "example.com.", "a.b.example.com."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualify(tt.in, tt.origin); got != tt.want {
				t.Errorf("Qualify(%q, %q) = %q, want %q", tt.in, tt.origin, got, tt.want)
			}
		})
	}
}

func TestAbsoluteAndTrim(t *testing.T) {
	if got := AbsoluteName("example.com"); got != "example.com." {
		t.Errorf("AbsoluteName = %q", got)
	}
	if got := AbsoluteName("example.com.."); got != "example.com." {
		t.Errorf("AbsoluteName = %q", got)
	}
	if got := TrimDot("example.com."); got != "example.com" {
		t.Errorf("TrimDot = %q", got)
	}
	if got := TrimDot("."); got != "." {
		t.Errorf("TrimDot(root) = %q", got)
	}
	if !IsAbsolute("a.") || IsAbsolute("a") {
		t.Errorf("IsAbsolute mismatch")
	}
}

func TestIsDomainName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"example.com.", true},
		{"www", true},
		{"_sip._tcp.example.com.", true},
		{"@", true},
		{"", false},
		{"a..b", false},
	}
	for _, tt := range tests {
		if got := IsDomainName(tt.in); got != tt.want {
			t.Errorf("IsDomainName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
