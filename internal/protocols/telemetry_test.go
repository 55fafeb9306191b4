package protocols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTelemetryRoundTrip(t *testing.T) {
	frame := TelemetryFrame{
		SensorID: 42,
		Samples:  []int64{100, -50, 0, 32767, -32768},
	}

	encoded, err := EncodeTelemetry(frame)
	require.NoError(t, err)

	decoded, err := DecodeTelemetry(encoded)
	require.NoError(t, err)
	require.Equal(t, frame.SensorID, decoded.SensorID)
	require.Equal(t, uint64(len(frame.Samples)), decoded.SampleCount)
	require.Equal(t, frame.Samples, decoded.Samples)
}

func TestTelemetryEmptySamples(t *testing.T) {
	frame := TelemetryFrame{SensorID: 7}

	encoded, err := EncodeTelemetry(frame)
	require.NoError(t, err)

	decoded, err := DecodeTelemetry(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded.Samples)
}
