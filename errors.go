package bistring

import "errors"

// ErrAlignmentDomainMismatch indicates New was called with an alignment
// whose original or modified range doesn't match the supplied strings'
// lengths.
var ErrAlignmentDomainMismatch = errors.New("bistring: alignment domain does not match string lengths")
