package iputil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCIDR(t *testing.T) {
	assert.True(t, IsCIDR("192.168.1.0/26"))
	assert.True(t, IsCIDR("0.0.0.0/0"))
	assert.False(t, IsCIDR("192.168.1.0"))
	assert.False(t, IsCIDR("not-an-ip/26"))
	assert.False(t, IsCIDR("192.168.1.0/33"))
}

func TestIsIPv4(t *testing.T) {
	assert.True(t, IsIPv4("10.188.65.0"))
	assert.False(t, IsIPv4("2001:db8::1"))
	assert.False(t, IsIPv4("256.1.1.1"))
}

func TestUint32RoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "10.188.65.63", "255.255.255.255"} {
		ip := net.ParseIP(s)
		assert.Equal(t, s, ToIP(ToUint32(ip)).String())
	}

	assert.Equal(t, uint32(0xc0a80100), ToUint32(net.ParseIP("192.168.1.0")))
	assert.Equal(t, uint32(0), ToUint32(net.ParseIP("2001:db8::1")))
}
