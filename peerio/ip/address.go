// Package ip provides the address-family value types consumed by transport
// collaborators: a tagged {v4, v6} union with lossless conversion to and
// from the platform representation (netip.Addr). It carries no behavior
// beyond conversion and formatting.
package ip

import (
	"errors"
	"net"
	"net/netip"
)

var ErrInvalidAddress = errors.New("ip: invalid address")

// Version tags the address family.
type Version uint8

const (
	V4 Version = iota + 1
	V6
)

func (v Version) String() string {
	switch v {
	case V4:
		return "v4"
	case V6:
		return "v6"
	default:
		return "unknown"
	}
}

// Address is a tagged union of an IPv4 or IPv6 address.
type Address struct {
	version Version
	v4      [4]byte
	v6      [16]byte
}

// V4Address constructs an IPv4 address value.
func V4Address(b [4]byte) Address {
	return Address{version: V4, v4: b}
}

// V6Address constructs an IPv6 address value.
func V6Address(b [16]byte) Address {
	return Address{version: V6, v6: b}
}

// FromAddr converts the platform representation. IPv4-mapped IPv6 addresses
// keep their v6 form; unmap first if v4 is wanted.
func FromAddr(addr netip.Addr) (Address, error) {
	switch {
	case addr.Is4():
		return V4Address(addr.As4()), nil
	case addr.Is6():
		return V6Address(addr.As16()), nil
	default:
		return Address{}, ErrInvalidAddress
	}
}

// FromIP converts a net.IP, preferring the v4 form when the address fits.
func FromIP(ip net.IP) (Address, error) {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return Address{}, ErrInvalidAddress
	}
	return FromAddr(addr.Unmap())
}

// ParseAddress parses a textual IPv4 or IPv6 literal.
func ParseAddress(s string) (Address, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return Address{}, err
	}
	return FromAddr(addr)
}

// Version reports the address family.
func (a Address) Version() Version { return a.version }

// IsV4 reports whether the address is IPv4.
func (a Address) IsV4() bool { return a.version == V4 }

// IsV6 reports whether the address is IPv6.
func (a Address) IsV6() bool { return a.version == V6 }

// V4 returns the IPv4 octets. It is only meaningful when IsV4 is true.
func (a Address) V4() [4]byte { return a.v4 }

// V6 returns the IPv6 octets. It is only meaningful when IsV6 is true.
func (a Address) V6() [16]byte { return a.v6 }

// Addr converts back to the platform representation.
func (a Address) Addr() netip.Addr {
	switch a.version {
	case V4:
		return netip.AddrFrom4(a.v4)
	case V6:
		return netip.AddrFrom16(a.v6)
	default:
		return netip.Addr{}
	}
}

// IP converts to net.IP.
func (a Address) IP() net.IP {
	return a.Addr().AsSlice()
}

func (a Address) String() string {
	if a.version == 0 {
		return "<invalid>"
	}
	return a.Addr().String()
}
