package adapter

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ipNet(cidr string) *net.IPNet {
	ip, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}

	network.IP = ip

	return network
}

func TestSelectIPv4(t *testing.T) {
	tests := []struct {
		name    string
		ifaces  []InterfaceAddrs
		want    string
		wantErr bool
	}{
		{
			name: "skips loopback and down interfaces",
			ifaces: []InterfaceAddrs{
				{Name: "lo", Flags: net.FlagUp | net.FlagLoopback, Addrs: []net.Addr{ipNet("127.0.0.1/8")}},
				{Name: "eth1", Flags: 0, Addrs: []net.Addr{ipNet("10.0.0.2/24")}},
				{Name: "eth0", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("192.168.1.20/24")}},
			},
			want: "192.168.1.20",
		},
		{
			name: "prefers IPv4 over IPv6",
			ifaces: []InterfaceAddrs{
				{Name: "wlan0", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("fe80::1/64"), ipNet("2001:db8::1/64"), &net.IPAddr{IP: net.ParseIP("172.16.0.9")}}},
			},
			want: "172.16.0.9",
		},
		{
			name: "skips link local",
			ifaces: []InterfaceAddrs{
				{Name: "eth0", Flags: net.FlagUp, Addrs: []net.Addr{ipNet("169.254.3.4/16")}},
			},
			wantErr: true,
		},
		{
			name:    "no interfaces",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectIPv4(tt.ifaces)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoAddress)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLocalNetworkAdapter_LocalIPv4(t *testing.T) {
	enumerationErr := errors.New("netlink unavailable")
	network := &LocalNetworkAdapter{interfaces: func() ([]InterfaceAddrs, error) {
		return nil, enumerationErr
	}}

	_, err := network.LocalIPv4(context.Background())
	require.ErrorIs(t, err, enumerationErr)
}
