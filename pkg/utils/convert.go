package utils

import "strconv"

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, err
	}
	return res, nil
}

// ParseID parses a path/query id parameter. Ids are positive integers;
// anything else is a malformed id, independent of whether the entity exists.
func ParseID(v string) (int64, bool) {
	id, err := ConvertStringToInt64(v)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
