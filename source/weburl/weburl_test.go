package weburl

import (
	"net"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			url:     "https://www.w3.org/2002/07/owl",
			wantErr: false,
		},
		{
			name:    "http URL rejected",
			url:     "http://example.com",
			wantErr: true,
		},
		{
			name:    "localhost rejected",
			url:     "https://localhost:8080",
			wantErr: true,
		},
		{
			name:    "127.0.0.1 rejected",
			url:     "https://127.0.0.1/path",
			wantErr: true,
		},
		{
			name:    ".local domain rejected",
			url:     "https://myserver.local/api",
			wantErr: true,
		},
		{
			name:    ".internal domain rejected",
			url:     "https://app.internal/api",
			wantErr: true,
		},
		{
			name:    "private IP 192.168.x.x rejected",
			url:     "https://192.168.1.1/path",
			wantErr: true,
		},
		{
			name:    "private IP 10.x.x.x rejected",
			url:     "https://10.0.0.1/path",
			wantErr: true,
		},
		{
			name:    "private IP 172.16.x.x rejected",
			url:     "https://172.16.0.1/path",
			wantErr: true,
		},
		{
			name:    "invalid URL",
			url:     "not-a-url",
			wantErr: true,
		},
		{
			name:    "ftp rejected",
			url:     "ftp://example.com/onto.yaml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Policy{}.Validate(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip       string
		expected bool
	}{
		// IPv4 private ranges
		{"192.168.1.1", true},
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"127.0.0.1", true},
		{"169.254.1.1", true}, // IPv4 link-local

		// IPv4 public
		{"8.8.8.8", false},
		{"1.1.1.1", false},

		// CGNAT
		{"100.64.0.1", true},
		{"100.127.255.255", true},

		// IPv6
		{"::1", true},                  // IPv6 loopback
		{"::ffff:192.168.1.1", true},   // IPv6-mapped private IPv4
		{"::ffff:127.0.0.1", true},     // IPv6-mapped loopback
		{"::ffff:8.8.8.8", false},      // IPv6-mapped public IPv4
		{"fe80::1", true},              // IPv6 link-local
		{"fc00::1", true},              // IPv6 unique local
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("failed to parse IP: %s", tt.ip)
			}
			got := IsPrivateIP(ip)
			if got != tt.expected {
				t.Errorf("IsPrivateIP(%q) = %v, want %v", tt.ip, got, tt.expected)
			}
		})
	}
}

func TestPolicyRelaxed(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		url     string
		wantErr bool
	}{
		{"http allowed", Policy{AllowHTTP: true}, "http://example.com/onto.yaml", false},
		{"http still blocks private", Policy{AllowHTTP: true}, "http://10.0.0.1/onto.yaml", true},
		{"private allowed", Policy{AllowPrivate: true}, "https://ontologies.internal/a.yaml", false},
		{"private still needs https", Policy{AllowPrivate: true}, "http://127.0.0.1/a.yaml", true},
		{"both", Policy{AllowHTTP: true, AllowPrivate: true}, "http://localhost:8080/a.yaml", false},
		{"no host", Policy{AllowHTTP: true, AllowPrivate: true}, "http:///a.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/onto.yaml", true},
		{"http://localhost:8080/onto.json", true},
		{"onto.yaml", false},
		{"/tmp/onto.yaml", false},
		{"file:///tmp/onto.yaml", false},
		{"C:\\ontologies\\onto.yaml", false},
		{"-", false},
	}

	for _, tt := range tests {
		if got := IsRemote(tt.in); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/ontologies/wine.yaml", "wine.yaml"},
		{"https://example.com/ontologies/wine.json?rev=2", "wine.json"},
		{"https://example.com/", "example.com"},
		{"https://example.com", "example.com"},
	}

	for _, tt := range tests {
		if got := FileName(tt.url); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
