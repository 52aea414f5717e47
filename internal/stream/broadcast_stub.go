//go:build !linux

package stream

import "net"

// Non-Linux platforms generally permit datagram broadcast without an
// explicit socket option.
func enableBroadcast(*net.UDPConn) error { return nil }
