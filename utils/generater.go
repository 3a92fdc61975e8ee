package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 6-digit OTP
	var buf [4]byte
	rand.Read(buf[:])
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(buf[:])%1000000)
}

func GenerateUUID() string {
	// Generate a UUID
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
