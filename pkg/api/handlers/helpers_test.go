package handlers

import (
	"errors"
	"strconv"
)

var errDriver = errors.New("pq: connection reset by peer")

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
