package laser

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furbrain/go-egismos/protocol"
)

// A frame must decode identically however the transport slices it up.
func TestReadFramePartialAssembly(t *testing.T) {
	frame := measureFrame(protocol.DefaultAddress, "1705")

	for n := 1; n <= len(frame); n++ {
		port := &mockPort{}
		// split the frame into n chunks of near-equal size
		for i := 0; i < n; i++ {
			lo := i * len(frame) / n
			hi := (i + 1) * len(frame) / n
			port.script(append([]byte(nil), frame[lo:hi]...))
		}
		d := New(port, WithTimeout(time.Second))

		got, err := d.readFrame(time.Now().Add(time.Second))
		require.NoError(t, err, "split into %d chunks", n)
		if diff := cmp.Diff(frame, got); diff != "" {
			t.Errorf("split into %d chunks, frame mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestReadFrameToleratesEmptyReads(t *testing.T) {
	frame := measureFrame(protocol.DefaultAddress, "1000")

	port := &mockPort{}
	port.script(nil, frame[:2], nil, nil, frame[2:])
	d := New(port, WithTimeout(time.Second))

	got, err := d.readFrame(time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestReadFrameSkipsLeadingNoise(t *testing.T) {
	frame := ackFrame(protocol.DefaultAddress, protocol.CmdLaserOn)

	port := &mockPort{}
	port.script([]byte{0x00, 0xFF, 0x42}, frame)
	d := New(port, WithTimeout(time.Second))

	got, err := d.readFrame(time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestReadFrameEndMarkerInHeader(t *testing.T) {
	// an address byte equal to the end marker must not terminate the frame
	frame := protocol.BuildFrame(protocol.FrameEnd, protocol.CmdSingleMeasure, []byte("1000"))

	port := &mockPort{}
	port.script(frame)
	d := New(port, WithTimeout(time.Second))

	got, err := d.readFrame(time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestReadFrameTimeoutMonotonic(t *testing.T) {
	const timeout = 80 * time.Millisecond

	port := &mockPort{}
	d := New(port)

	start := time.Now()
	_, err := d.readFrame(time.Now().Add(timeout))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, timeout+300*time.Millisecond)
}

func TestReadFrameNoiseOnlyTimesOut(t *testing.T) {
	port := &mockPort{}
	// a start marker arrives but the frame never completes
	port.script([]byte{protocol.FrameStart, 0x01})
	d := New(port)

	_, err := d.readFrame(time.Now().Add(60 * time.Millisecond))
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestReadFrameExpiredDeadline(t *testing.T) {
	port := &mockPort{}
	port.script(measureFrame(protocol.DefaultAddress, "1000"))
	d := New(port)

	_, err := d.readFrame(time.Now().Add(-time.Second))
	assert.ErrorIs(t, err, ErrTimeout)
}
