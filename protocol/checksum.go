package protocol

// Checksum computes the 7-bit additive checksum over the given bytes.
//
// The module sums every byte between the start marker and the checksum byte
// itself (address, command and data) and truncates the result to 7 bits.
// This must stay bit-exact with the device firmware: captures from real
// hardware confirm the 0x7F mask, not the usual modulo-256 truncation.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum & ChecksumMask
}
