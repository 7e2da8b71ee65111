package ip

import (
	"net/netip"
	"testing"
)

func TestV4RoundTrip(t *testing.T) {
	addr, err := ParseAddress("192.0.2.17")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if !addr.IsV4() || addr.Version() != V4 {
		t.Fatalf("expected v4, got %v", addr.Version())
	}
	if addr.V4() != [4]byte{192, 0, 2, 17} {
		t.Fatalf("octets: %v", addr.V4())
	}
	if got := addr.Addr(); got != netip.MustParseAddr("192.0.2.17") {
		t.Fatalf("Addr: %v", got)
	}
	if addr.String() != "192.0.2.17" {
		t.Fatalf("String: %q", addr.String())
	}
}

func TestV6RoundTrip(t *testing.T) {
	native := netip.MustParseAddr("2001:db8::42")
	addr, err := FromAddr(native)
	if err != nil {
		t.Fatalf("FromAddr: %v", err)
	}
	if !addr.IsV6() {
		t.Fatalf("expected v6, got %v", addr.Version())
	}
	if addr.Addr() != native {
		t.Fatalf("round trip: %v", addr.Addr())
	}

	back, err := FromIP(addr.IP())
	if err != nil {
		t.Fatalf("FromIP: %v", err)
	}
	if back.Addr() != native {
		t.Fatalf("net.IP round trip: %v", back.Addr())
	}
}

func TestInvalidAddress(t *testing.T) {
	if _, err := ParseAddress("not an address"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := FromAddr(netip.Addr{}); err != ErrInvalidAddress {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	var zero Address
	if zero.String() != "<invalid>" {
		t.Fatalf("zero value String: %q", zero.String())
	}
}
