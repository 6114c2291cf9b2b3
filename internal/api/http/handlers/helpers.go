package handlers

import (
	"errors"
	"strconv"
)

var errInvalidID = errors.New("invalid id")

func parseID(val string) (int64, error) {
	if val == "" {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
