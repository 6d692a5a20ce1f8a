package mapper

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/zan8in/natmap/pkg/util/iputil"
)

var (
	ErrInvalidCidr  = errors.New("invalid cidr")
	ErrSizeMismatch = errors.New("subnet masks must be identical")
)

// AddressRange is an IPv4 network as a 32-bit base address plus prefix
// length. Base always has its host bits zeroed.
type AddressRange struct {
	Base      uint32
	PrefixLen int
}

// ParseRange parses an a.b.c.d/n string into an AddressRange. Host bits in
// the address part are masked off rather than rejected, so "192.168.1.37/26"
// normalizes to 192.168.1.0/26.
func ParseRange(cidr string) (AddressRange, error) {
	if !iputil.IsCIDR(cidr) {
		return AddressRange{}, errors.Wrap(ErrInvalidCidr, cidr)
	}
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil || ip.To4() == nil {
		return AddressRange{}, errors.Wrap(ErrInvalidCidr, cidr)
	}
	ones, bits := ipnet.Mask.Size()
	if bits != net.IPv4len*8 {
		return AddressRange{}, errors.Wrap(ErrInvalidCidr, cidr)
	}
	base := iputil.ToUint32(ip) & netmask(ones)
	return AddressRange{Base: base, PrefixLen: ones}, nil
}

func netmask(prefixLen int) uint32 {
	return ^uint32(0) << (32 - prefixLen)
}

func (r AddressRange) mask() uint32 {
	return netmask(r.PrefixLen)
}

// Size returns the total number of addresses in the range, 2^(32-prefix).
func (r AddressRange) Size() uint64 {
	return 1 << (32 - r.PrefixLen)
}

// UsableHosts returns the address count minus network and broadcast. For
// /31 and /32 every address is usable.
func (r AddressRange) UsableHosts() uint64 {
	if r.PrefixLen >= 31 {
		return r.Size()
	}
	return r.Size() - 2
}

// Network returns the network address of the range
func (r AddressRange) Network() net.IP {
	return iputil.ToIP(r.Base)
}

// Broadcast returns the last address of the range
func (r AddressRange) Broadcast() net.IP {
	return iputil.ToIP(r.Base | ^r.mask())
}

// Netmask returns the dotted-decimal netmask of the range
func (r AddressRange) Netmask() net.IP {
	return iputil.ToIP(r.mask())
}

func (r AddressRange) CIDR() string {
	return fmt.Sprintf("%s/%d", r.Network(), r.PrefixLen)
}

func (r AddressRange) IPNet() *net.IPNet {
	return &net.IPNet{IP: r.Network(), Mask: net.CIDRMask(r.PrefixLen, 32)}
}

func (r AddressRange) String() string {
	return r.CIDR()
}

// Info expands the range into its display metadata
func (r AddressRange) Info() RangeInfo {
	return RangeInfo{
		Base:        r.Base,
		CIDR:        r.CIDR(),
		Network:     r.Network().String(),
		Netmask:     r.Netmask().String(),
		Broadcast:   r.Broadcast().String(),
		PrefixLen:   r.PrefixLen,
		Addresses:   r.Size(),
		UsableHosts: r.UsableHosts(),
	}
}
