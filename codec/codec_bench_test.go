package codec

import (
	"testing"

	"github.com/hupe1980/hypervec"
	"github.com/hupe1980/hypervec/testutil"
)

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v hypervec.Vector
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func benchVector() hypervec.Vector {
	return hypervec.New(testutil.NewRNG(42).GaussianVector(768))
}

func BenchmarkCodecMarshal(b *testing.B) {
	v := benchVector()
	for _, c := range []Codec{Binary{}, JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			benchmarkCodecMarshal(b, c, v)
		})
	}
}

func BenchmarkCodecUnmarshal(b *testing.B) {
	v := benchVector()
	for _, c := range []Codec{Binary{}, JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			benchmarkCodecUnmarshal(b, c, MustMarshal(c, v))
		})
	}
}
