package adapter

import (
	"context"
	"errors"
	"net"
)

// ErrNoAddress is returned when no interface carries a routable IPv4 address.
var ErrNoAddress = errors.New("no local IPv4 address")

// NetworkAdapter enumerates the network interfaces of the machine.
type NetworkAdapter interface {
	// LocalIPv4 returns the primary IPv4 address of the machine.
	LocalIPv4(ctx context.Context) (net.IP, error)
}

// InterfaceAddrs pairs an interface's flags with its addresses.
type InterfaceAddrs struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// LocalNetworkAdapter implements NetworkAdapter with the net package.
type LocalNetworkAdapter struct {
	interfaces func() ([]InterfaceAddrs, error)
}

// NewLocalNetworkAdapter constructs a LocalNetworkAdapter for the host.
func NewLocalNetworkAdapter() *LocalNetworkAdapter {
	return &LocalNetworkAdapter{interfaces: hostInterfaces}
}

// LocalIPv4 returns the first IPv4 address of an interface that is up and
// not a loopback, in the order the OS lists interfaces.
func (a *LocalNetworkAdapter) LocalIPv4(_ context.Context) (net.IP, error) {
	ifaces, err := a.interfaces()
	if err != nil {
		return nil, err
	}

	return selectIPv4(ifaces)
}

func selectIPv4(ifaces []InterfaceAddrs) (net.IP, error) {
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		for _, addr := range iface.Addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() && !ip4.IsLinkLocalUnicast() {
				return ip4, nil
			}
		}
	}

	return nil, ErrNoAddress
}

func hostInterfaces() ([]InterfaceAddrs, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make([]InterfaceAddrs, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		out = append(out, InterfaceAddrs{Name: iface.Name, Flags: iface.Flags, Addrs: addrs})
	}

	return out, nil
}
