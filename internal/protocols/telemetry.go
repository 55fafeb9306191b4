package protocols

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/block"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
)

// TelemetryFrame is a compact sensor frame: a fixed header naming the
// sensor and the number of samples that follow, then that many signed
// 16-bit samples packed back-to-back with no separator.
type TelemetryFrame struct {
	SensorID    uint64
	SampleCount uint64
	Samples     []int64
}

// TelemetryBlock exercises the array codec under the resolver
// protocol: the dynamic `samples` segment's total size in bits depends
// on `sample_count`, already decoded from the fixed prefix.
var TelemetryBlock = mustBuildTelemetryBlock()

const telemetrySampleBits = 16

func mustBuildTelemetryBlock() *block.Block {
	b, err := block.New("telemetry",
		segment.New("sensor_id", segment.Fixed(16), segment.WithEndian(endian.Native)),
		segment.New("sample_count", segment.Fixed(8)),
		segment.NewArray("samples", segment.Integer,
			segment.WithElementSize(telemetrySampleBits),
			segment.WithArraySign(segment.Signed),
			segment.WithArrayEndian(endian.Native),
		),
	)
	if err != nil {
		panic(err)
	}
	return b
}

// TelemetryResolver derives the samples segment's bit-length from the
// already-decoded sample_count field.
var TelemetryResolver = block.ResolverFunc(func(view block.RecordView, name string, acc interface{}) (uint, interface{}, error) {
	if name != "samples" {
		return 0, acc, nil
	}
	countVal, _ := view.Get("sample_count")
	count := countVal.(uint64)
	return uint(count) * telemetrySampleBits, acc, nil
})

// EncodeTelemetry builds the on-wire bitstring for a frame. SampleCount
// is derived from len(Samples) rather than trusted from the caller.
func EncodeTelemetry(f TelemetryFrame) (bits.String, error) {
	r := block.NewRecord()
	r.Set("sensor_id", f.SensorID)
	r.Set("sample_count", uint64(len(f.Samples)))

	elems := make([]interface{}, len(f.Samples))
	for i, s := range f.Samples {
		elems[i] = s
	}
	r.Set("samples", segment.DynamicSegment{Value: elems, Size: uint(len(f.Samples)) * telemetrySampleBits})

	return TelemetryBlock.Encode(r)
}

// DecodeTelemetry parses a frame, resolving the sample array's length
// from the header via TelemetryResolver.
func DecodeTelemetry(data bits.String) (TelemetryFrame, error) {
	r, err := TelemetryBlock.DecodeDynamic(data, nil, TelemetryResolver)
	if err != nil {
		return TelemetryFrame{}, err
	}

	sensorID, _ := r.Get("sensor_id")
	sampleCount, _ := r.Get("sample_count")
	samplesVal, _ := r.Get("samples")

	rawSamples := samplesVal.(segment.DynamicSegment).Value.([]interface{})
	samples := make([]int64, len(rawSamples))
	for i, v := range rawSamples {
		samples[i] = v.(int64)
	}

	return TelemetryFrame{
		SensorID:    sensorID.(uint64),
		SampleCount: sampleCount.(uint64),
		Samples:     samples,
	}, nil
}
