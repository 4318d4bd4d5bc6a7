package bits

import (
	"diffsteg/test"
	"fmt"
	"testing"
)

const numOfBytesForBenchmark = 1000000

func BenchmarkReadBits(b *testing.B) {
	bytesToRead := test.GenerateRandomBytes(numOfBytesForBenchmark)
	for _, bitsPerRead := range []uint{1, 8} {
		b.Run(fmt.Sprintf("bitsPerRead=%d", bitsPerRead), func(b *testing.B) {
			b.SetBytes(int64(numOfBytesForBenchmark))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				bBitReader := NewBitReader(bytesToRead)
				b.StartTimer()
				for len(bBitReader.bytes) > 0 {
					bBitReader.ReadBits(bitsPerRead)
				}
			}
		})
	}
}

func BenchmarkWriteBits(b *testing.B) {
	bitsToWrite := test.GenerateRandomBytes(numOfBytesForBenchmark)
	b.SetBytes(int64(numOfBytesForBenchmark))
	for i := 0; i < b.N; i++ {
		bw := NewBitWriter(len(bitsToWrite))
		for _, bit := range bitsToWrite {
			bw.WriteBit(bit)
		}
	}
}
