/*
File    : gobasic/value/errors.go
Package : value
*/
package value

import "errors"

// ErrIndexOutOfRange is returned by List.At/Pop when an index falls
// outside the list, wrapped with position/context information by the
// interpreter before it reaches the user.
var ErrIndexOutOfRange = errors.New("list index out of range")
