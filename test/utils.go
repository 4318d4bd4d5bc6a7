package test

import "math/rand"

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomLatin1Message returns a message whose characters all have code points in [0,255]
func GenerateRandomLatin1Message(numOfCharsToGenerate int) string {
	runes := make([]rune, numOfCharsToGenerate)
	for i := range runes {
		runes[i] = rune(rand.Intn(256))
	}
	return string(runes)
}

// GenerateRandomPixels returns an RGBA buffer for the given number of pixels. When opaque is set every alpha
// channel is 255
func GenerateRandomPixels(numOfPixels int, opaque bool) []byte {
	pixels := GenerateRandomBytes(numOfPixels * 4)
	if opaque {
		for p := 3; p < len(pixels); p += 4 {
			pixels[p] = 255
		}
	}
	return pixels
}
