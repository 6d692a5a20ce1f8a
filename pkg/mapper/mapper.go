// Package mapper computes positional 1:1 NAT mappings between two
// equal-size IPv4 ranges.
package mapper

import (
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/yl2chen/cidranger"
	"github.com/zan8in/natmap/pkg/util/iputil"
)

// Entry pairs one DMZ address with one internal address. Position i in the
// DMZ range always maps to position i in the internal range.
type Entry struct {
	DMZ      string `json:"dmz_ip"`
	Internal string `json:"internal_ip"`
}

// RangeInfo is the display metadata of one side of the mapping
type RangeInfo struct {
	Base        uint32 `json:"-"`
	CIDR        string `json:"cidr"`
	Network     string `json:"network"`
	Netmask     string `json:"netmask"`
	Broadcast   string `json:"broadcast"`
	PrefixLen   int    `json:"prefix_len"`
	Addresses   uint64 `json:"addresses"`
	UsableHosts uint64 `json:"usable_hosts"`
}

// Result is a complete mapping between two ranges. HostsOnly records
// whether network and broadcast addresses were left out, so consumers never
// have to guess the policy from the entry count.
type Result struct {
	ID        string    `json:"id"`
	DMZ       RangeInfo `json:"dmz"`
	Internal  RangeInfo `json:"internal"`
	Entries   []Entry   `json:"entries"`
	HostsOnly bool      `json:"hosts_only"`
	Overlap   bool      `json:"overlap"`
}

type Options struct {
	// HostsOnly leaves network and broadcast addresses out of the mapping.
	// Ignored for /31 and /32, which have no usable-host subset.
	HostsOnly bool
}

func DefaultOptions() Options {
	return Options{HostsOnly: true}
}

// Map builds the 1:1 mapping between two equal-size CIDR ranges. Both
// inputs must be valid IPv4 CIDR with identical prefix lengths; on error no
// partial result is returned.
func Map(dmzCidr, internalCidr string, opts Options) (*Result, error) {
	dmz, err := ParseRange(dmzCidr)
	if err != nil {
		return nil, err
	}
	internal, err := ParseRange(internalCidr)
	if err != nil {
		return nil, err
	}

	if dmz.PrefixLen != internal.PrefixLen {
		return nil, errors.Wrapf(ErrSizeMismatch, "dmz /%d, internal /%d", dmz.PrefixLen, internal.PrefixLen)
	}

	hostsOnly := opts.HostsOnly && dmz.PrefixLen <= 30

	first, last := uint64(0), dmz.Size()-1
	if hostsOnly {
		first, last = 1, last-1
	}

	entries := make([]Entry, 0, last-first+1)
	for i := first; i <= last; i++ {
		entries = append(entries, Entry{
			DMZ:      iputil.ToIP(dmz.Base + uint32(i)).String(),
			Internal: iputil.ToIP(internal.Base + uint32(i)).String(),
		})
	}

	return &Result{
		ID:        xid.New().String(),
		DMZ:       dmz.Info(),
		Internal:  internal.Info(),
		Entries:   entries,
		HostsOnly: hostsOnly,
		Overlap:   overlaps(dmz, internal),
	}, nil
}

// overlaps reports whether the two ranges share any address. Prefix lengths
// are equal here, so containment of either base decides it.
func overlaps(a, b AddressRange) bool {
	ranger := cidranger.NewPCTrieRanger()
	if err := ranger.Insert(cidranger.NewBasicRangerEntry(*a.IPNet())); err != nil {
		return false
	}
	ok, err := ranger.Contains(b.Network())
	return err == nil && ok
}
