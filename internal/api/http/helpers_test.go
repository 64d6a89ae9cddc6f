package http_test

import "strconv"

func itoa(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}
