package mnlz

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidCommand    = errors.New("invalid compression command")
	ErrBlockSizeMismatch = errors.New("declared block size doesn't match the actual one")
	ErrSizeMismatch      = errors.New("declared uncompressed size doesn't match the actual one")
	ErrInvalidBackRef    = errors.New("back reference outside produced output")
	ErrBlockTooLarge     = errors.New("compressed block doesn't fit 16-bit size prefix")
	ErrVarintRange       = errors.New("value doesn't fit varint encoding")
	ErrUnexpectedEOF     = errors.New("unexpected end of compressed stream")
	ErrNilReader         = errors.New("reader is nil")
	ErrEmptyInput        = errors.New("input is empty")
)
