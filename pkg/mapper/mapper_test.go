package mapper

import (
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zan8in/natmap/pkg/util/iputil"
)

func TestMapAllAddresses(t *testing.T) {
	result, err := Map("192.168.1.0/26", "10.188.65.0/26", Options{HostsOnly: false})
	require.NoError(t, err)

	require.Len(t, result.Entries, 64)
	assert.Equal(t, Entry{DMZ: "192.168.1.0", Internal: "10.188.65.0"}, result.Entries[0])
	assert.Equal(t, Entry{DMZ: "192.168.1.63", Internal: "10.188.65.63"}, result.Entries[63])
	assert.False(t, result.HostsOnly)
	assert.NotEmpty(t, result.ID)
}

func TestMapHostsOnly(t *testing.T) {
	result, err := Map("192.168.1.0/26", "10.188.65.0/26", DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Entries, 62)
	assert.Equal(t, Entry{DMZ: "192.168.1.1", Internal: "10.188.65.1"}, result.Entries[0])
	assert.Equal(t, Entry{DMZ: "192.168.1.62", Internal: "10.188.65.62"}, result.Entries[61])
	assert.True(t, result.HostsOnly)
}

func TestMapEntryOrdering(t *testing.T) {
	result, err := Map("172.16.0.0/24", "10.0.0.0/24", Options{HostsOnly: false})
	require.NoError(t, err)
	require.Len(t, result.Entries, 256)

	prev := uint32(0)
	for i, e := range result.Entries {
		dmz := iputil.ToUint32(net.ParseIP(e.DMZ))
		internal := iputil.ToUint32(net.ParseIP(e.Internal))
		assert.Equal(t, dmz-result.DMZ.Base, internal-result.Internal.Base)
		if i > 0 {
			assert.Equal(t, prev+1, dmz)
		}
		prev = dmz
	}
}

func TestMapSizeMismatch(t *testing.T) {
	result, err := Map("192.168.1.0/26", "10.0.0.0/24", DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Contains(t, err.Error(), "/26")
	assert.Contains(t, err.Error(), "/24")
}

func TestMapInvalidCidr(t *testing.T) {
	for _, input := range []string{
		"not-an-ip/26",
		"192.168.1.0",
		"192.168.1.0/33",
		"192.168.1.0/-1",
		"2001:db8::/64",
		"",
	} {
		result, err := Map(input, "10.0.0.0/26", DefaultOptions())
		require.Errorf(t, err, "input %q", input)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, ErrInvalidCidr), "input %q got %v", input, err)
	}

	_, err := Map("10.0.0.0/26", "bad/26", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCidr))
	assert.Contains(t, err.Error(), "bad/26")
}

func TestMapNormalizesBase(t *testing.T) {
	result, err := Map("192.168.1.37/26", "10.188.65.9/26", Options{HostsOnly: false})
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.0/26", result.DMZ.CIDR)
	assert.Equal(t, "10.188.65.0/26", result.Internal.CIDR)
	assert.Equal(t, "192.168.1.0", result.Entries[0].DMZ)
}

func TestMapTinyPrefixes(t *testing.T) {
	// /31 and /32 have no usable-host subset, the full range is mapped
	result, err := Map("192.168.1.0/31", "10.0.0.0/31", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.False(t, result.HostsOnly)

	result, err = Map("192.168.1.1/32", "10.0.0.1/32", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, Entry{DMZ: "192.168.1.1", Internal: "10.0.0.1"}, result.Entries[0])
}

func TestMapOverlapDetection(t *testing.T) {
	result, err := Map("10.0.0.0/24", "10.0.0.0/24", Options{HostsOnly: false})
	require.NoError(t, err)
	assert.True(t, result.Overlap)

	result, err = Map("192.168.1.0/26", "10.188.65.0/26", DefaultOptions())
	require.NoError(t, err)
	assert.False(t, result.Overlap)
}

func TestRangeInfoMetadata(t *testing.T) {
	result, err := Map("192.168.1.0/26", "10.188.65.0/26", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.0", result.DMZ.Network)
	assert.Equal(t, "255.255.255.192", result.DMZ.Netmask)
	assert.Equal(t, "192.168.1.63", result.DMZ.Broadcast)
	assert.Equal(t, 26, result.DMZ.PrefixLen)
	assert.Equal(t, uint64(64), result.DMZ.Addresses)
	assert.Equal(t, uint64(62), result.DMZ.UsableHosts)

	assert.Equal(t, "10.188.65.63", result.Internal.Broadcast)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("192.168.1.37/26")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/26", r.CIDR())
	assert.Equal(t, uint64(64), r.Size())

	r, err = ParseRange("0.0.0.0/0")
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<32, r.Size())
	assert.Equal(t, "255.255.255.255", r.Broadcast().String())
	assert.Equal(t, "0.0.0.0", r.Netmask().String())

	_, err = ParseRange("300.0.0.1/24")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCidr))
}
