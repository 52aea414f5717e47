package stream

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumacast/lumacast/internal/artnet"
	"github.com/lumacast/lumacast/internal/frame"
)

// fakeTransport captures every packet for inspection.
type fakeTransport struct {
	mu      sync.Mutex
	packets [][]byte
	fail    bool
}

func (f *fakeTransport) Send(pkt []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("network unreachable")
	}
	f.packets = append(f.packets, append([]byte(nil), pkt...))
	return nil
}

func (f *fakeTransport) Close() error { return nil }

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.packets)
}

func (f *fakeTransport) all() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.packets))
	copy(out, f.packets)
	return out
}

func (f *fakeTransport) setFail(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = v
}

// litEffect turns every pixel on, so frames are distinguishable from the
// shutdown blank.
type litEffect struct{}

func (litEffect) Name() string            { return "lit" }
func (litEffect) Interval() time.Duration { return time.Millisecond }
func (litEffect) Tick(buf *frame.Buffer) {
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, frame.Pixel{R: 255, G: 128, B: 64})
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRunSendsFramesAndBlanksOnCancel(t *testing.T) {
	const n = 6
	buf, err := frame.New(n)
	require.NoError(t, err)
	tr := &fakeTransport{}
	s := New(3, buf, litEffect{}, tr, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	waitFor(t, func() bool { return tr.count() >= 5 })
	cancel()
	require.NoError(t, <-done)

	pkts := tr.all()
	require.GreaterOrEqual(t, len(pkts), 6)

	// Every packet is a well-formed ArtDMX frame for universe 3.
	for _, pkt := range pkts {
		require.Len(t, pkt, artnet.HeaderLen+n*3)
		assert.Equal(t, []byte("Art-Net\x00"), pkt[0:8])
		assert.Equal(t, byte(3), pkt[14])
	}

	// Exactly the final packet is all-zero channel data.
	last := pkts[len(pkts)-1]
	assert.True(t, bytes.Equal(make([]byte, n*3), last[artnet.HeaderLen:]), "shutdown frame must be blank")
	for i, pkt := range pkts[:len(pkts)-1] {
		assert.NotEqual(t, make([]byte, n*3), pkt[artnet.HeaderLen:], "frame %d", i)
	}
}

func TestSendFailureSkipsFrameAndContinues(t *testing.T) {
	buf, err := frame.New(4)
	require.NoError(t, err)
	tr := &fakeTransport{}
	tr.setFail(true)
	s := New(0, buf, litEffect{}, tr, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Let several ticks fail, then recover.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, tr.count())
	tr.setFail(false)
	waitFor(t, func() bool { return tr.count() >= 3 })
	cancel()
	require.NoError(t, <-done)
}

func TestTapSeesChannelData(t *testing.T) {
	buf, err := frame.New(2)
	require.NoError(t, err)
	tr := &fakeTransport{}
	s := New(0, buf, litEffect{}, tr, zerolog.Nop())

	var mu sync.Mutex
	var got [][]byte
	var ids []uint64
	s.SetTap(func(id uint64, channels []byte) {
		mu.Lock()
		defer mu.Unlock()
		ids = append(ids, id)
		got = append(got, append([]byte(nil), channels...))
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	waitFor(t, func() bool { mu.Lock(); defer mu.Unlock(); return len(got) >= 3 })
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []byte{255, 128, 64, 255, 128, 64}, got[0])
	for i, id := range ids {
		assert.Equal(t, uint64(i+1), id, "frame ids are sequential")
	}
}

func TestBlank(t *testing.T) {
	tr := &fakeTransport{}
	require.NoError(t, Blank(tr, 9, 5))
	pkts := tr.all()
	require.Len(t, pkts, 1)
	assert.Len(t, pkts[0], artnet.HeaderLen+15)
	assert.Equal(t, make([]byte, 15), pkts[0][artnet.HeaderLen:])
	assert.Equal(t, byte(9), pkts[0][14])
}
