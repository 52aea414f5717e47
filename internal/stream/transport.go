package stream

import (
	"fmt"
	"net"
	"strconv"

	"github.com/lumacast/lumacast/internal/artnet"
)

// Transport sends one encoded packet per call. UDP in production, a
// capture fake in tests.
type Transport interface {
	Send(pkt []byte) error
	Close() error
}

// UDP is a connected datagram socket to one Art-Net node (or a broadcast
// address; the socket has broadcast permission).
type UDP struct {
	conn *net.UDPConn
}

// NewUDP resolves host and dials its Art-Net port.
func NewUDP(host string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(artnet.Port)))
	if err != nil {
		return nil, fmt.Errorf("resolve target %s: %w", host, err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if err := enableBroadcast(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable broadcast: %w", err)
	}
	return &UDP{conn: conn}, nil
}

func (u *UDP) Send(pkt []byte) error {
	_, err := u.conn.Write(pkt)
	return err
}

func (u *UDP) Close() error { return u.conn.Close() }
