package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		addr byte
		cmd  byte
		data []byte
	}{
		{"ack", 0x01, CmdLaserOn, []byte{0x01}},
		{"measurement", 0x01, CmdSingleMeasure, []byte("1705")},
		{"error tag", 0x01, CmdSingleMeasure, []byte("ERR255")},
		{"empty data", 0x03, CmdReadDeviceType, nil},
		{"high address", 0xFE, CmdBuzzerControl, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildFrame(tt.addr, tt.cmd, tt.data)
			addr, cmd, data, err := ParseFrame(frame)
			require.NoError(t, err)
			assert.Equal(t, tt.addr, addr)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, []byte(tt.data), append([]byte(nil), data...))
		})
	}
}

func TestParseFrameFaults(t *testing.T) {
	valid := BuildFrame(0x01, CmdSingleMeasure, []byte("1000"))

	corrupt := func(i int, b byte) []byte {
		f := append([]byte(nil), valid...)
		f[i] = b
		return f
	}

	tests := []struct {
		name  string
		frame []byte
		fault FrameFault
	}{
		{"too short", valid[:4], FaultLength},
		{"empty", nil, FaultLength},
		{"bad start marker", corrupt(0, 0x55), FaultStart},
		{"bad end marker", corrupt(len(valid)-1, 0x55), FaultEnd},
		{"zeroed checksum", corrupt(len(valid)-2, 0x00), FaultChecksum},
		{"corrupted data byte", corrupt(4, '9'), FaultChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseFrame(tt.frame)
			require.Error(t, err)

			var fe *FrameError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.fault, fe.Fault)
			assert.True(t, IsFrameError(err))
		})
	}
}

// Flipping the low bit of any covered byte changes the 7-bit sum, so every
// such corruption must surface as a checksum fault.
func TestParseFrameChecksumSensitivity(t *testing.T) {
	valid := BuildFrame(0x01, CmdSingleMeasure, []byte("1705"))

	for i := 1; i < len(valid)-2; i++ {
		f := append([]byte(nil), valid...)
		f[i] ^= 0x01

		_, _, _, err := ParseFrame(f)
		var fe *FrameError
		require.ErrorAs(t, err, &fe, "byte %d", i)
		assert.Equal(t, FaultChecksum, fe.Fault, "byte %d", i)
	}
}

func TestParseAck(t *testing.T) {
	assert.NoError(t, ParseAck([]byte{AckOK}))
	assert.NoError(t, ParseAck([]byte{AckOK, 0x00}))

	for _, data := range [][]byte{nil, {}, {0x00}, {0x02}} {
		err := ParseAck(data)
		require.Error(t, err)

		var cf *CommandFailedError
		assert.True(t, errors.As(err, &cf))
	}
}
