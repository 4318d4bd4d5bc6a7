package bits

// BitWriter packs single bits into bytes, most significant bit first. Bits belonging to a byte that was never
// completed are not part of Bytes
type BitWriter struct {
	bytes         []byte
	currentByte   byte
	currentBitIdx uint
}

func NewBitWriter(expectedBits int) *BitWriter {
	return &BitWriter{
		bytes: make([]byte, 0, expectedBits/8),
	}
}

// WriteBit appends the least significant bit of bit
func (bw *BitWriter) WriteBit(bit byte) {
	bw.currentByte = bw.currentByte<<1 | (bit & 1)
	bw.currentBitIdx++
	if bw.currentBitIdx == 8 {
		bw.bytes = append(bw.bytes, bw.currentByte)
		bw.currentByte = 0
		bw.currentBitIdx = 0
	}
}

func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
