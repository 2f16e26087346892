package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")

	// ErrInvalidListPolicy is returned for an unrecognized list policy.
	ErrInvalidListPolicy = pipeline.ErrInvalidListPolicy
)
