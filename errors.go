package lphashmap

import "github.com/pkg/errors"

// ErrInvalidConf - Returned (wrapped) by NewWithConf when a Conf field is out of range
var ErrInvalidConf = errors.New("invalid probing table configuration")
