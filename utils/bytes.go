package utils

import "fmt"

// ReverseBytes reverses the bytes inside the byte slice and returns the same slice. It does not return a copy.
func ReverseBytes(bytes []byte) []byte {
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
	return bytes
}

func ReverseBytesCopy(bytes []byte) []byte {
	reversed := make([]byte, len(bytes))
	copy(reversed, bytes)
	return ReverseBytes(reversed)
}

// ConvertToFixedLength4 is used for network magics and extended key version bytes.
func ConvertToFixedLength4(input []byte) [4]byte {
	if len(input) != 4 {
		panic(fmt.Sprintf("wrong length expected 4 got %d", len(input)))
	}
	var output [4]byte
	copy(output[:], input)
	return output
}
