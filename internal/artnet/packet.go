// Package artnet builds Art-Net ArtDMX datagrams.
package artnet

import "fmt"

// Port is the UDP port Art-Net nodes listen on.
const Port = 6454

// MaxChannels is the DMX universe channel limit.
const MaxChannels = 512

// HeaderLen is the fixed ArtDMX header size preceding the channel data.
const HeaderLen = 18

var signature = []byte("Art-Net\x00")

// Packet serializes one ArtDMX frame: signature, opcode 0x5000 (LE),
// protocol version 14 (BE), sequence 0, physical 0, universe (LE),
// data length (BE), then the raw channel bytes.
//
// The sequence byte stays zero: zero tells receivers sequencing is
// disabled, and the reference sender never increments it.
func Packet(universe uint16, data []byte) ([]byte, error) {
	if len(data) > MaxChannels {
		return nil, fmt.Errorf("channel data %d bytes exceeds universe limit %d", len(data), MaxChannels)
	}
	pkt := make([]byte, HeaderLen+len(data))
	copy(pkt[0:], signature)
	pkt[8] = 0x00 // OpDmx low byte
	pkt[9] = 0x50 // OpDmx high byte
	pkt[10] = 0x00
	pkt[11] = 14 // protocol version
	pkt[12] = 0x00 // sequence
	pkt[13] = 0x00 // physical
	pkt[14] = byte(universe & 0xFF)
	pkt[15] = byte(universe >> 8)
	pkt[16] = byte(len(data) >> 8)
	pkt[17] = byte(len(data) & 0xFF)
	copy(pkt[HeaderLen:], data)
	return pkt, nil
}
