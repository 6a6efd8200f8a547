package utils

import (
	"encoding/base64"
	"errors"
	"strconv"
)

// EncodeUID turns a user primary key into the urlsafe-base64 form used in
// password-reset links (base64 over the decimal string, no padding).
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

func DecodeUID(uid string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, errors.New("invalid uid")
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid uid")
	}
	return uint(id), nil
}
