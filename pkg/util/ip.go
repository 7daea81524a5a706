package util

import (
	"net"
	"strings"
)

// IsValidIPv4 checks if a string is a valid dotted-quad IPv4 address
func IsValidIPv4(ipStr string) bool {
	if strings.Count(ipStr, ".") != 3 {
		return false
	}
	ip := net.ParseIP(ipStr)
	return ip != nil && ip.To4() != nil
}

// IsValidNetmask checks if a string is a valid dotted-quad IPv4 netmask
// with contiguous leading ones (e.g. "255.255.255.0").
func IsValidNetmask(maskStr string) bool {
	if !IsValidIPv4(maskStr) {
		return false
	}
	ip := net.ParseIP(maskStr).To4()
	mask := net.IPv4Mask(ip[0], ip[1], ip[2], ip[3])
	ones, bits := mask.Size()
	// Size returns 0,0 for non-contiguous masks
	return bits == 32 && ones > 0
}
