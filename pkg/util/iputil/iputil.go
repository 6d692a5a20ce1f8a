package iputil

import (
	"encoding/binary"
	"net"

	"github.com/asaskevich/govalidator"
)

// IsIPv4 checks if the string is a dotted-decimal IPv4 address
func IsIPv4(str string) bool {
	return govalidator.IsIPv4(str)
}

// IsCIDR checks if the string is a valid CIDR notation (a.b.c.d/n)
func IsCIDR(str string) bool {
	return govalidator.IsCIDR(str)
}

// ToUint32 converts an IPv4 address to its 32-bit integer form
func ToUint32(ip net.IP) uint32 {
	if v4 := ip.To4(); v4 != nil {
		return binary.BigEndian.Uint32(v4)
	}
	return 0
}

// ToIP converts a 32-bit integer back to a dotted-decimal IPv4 address
func ToIP(nn uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, nn)
	return ip
}
