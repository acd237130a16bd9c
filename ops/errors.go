package ops

import "errors"

// errDivideByZero is produced by Divide/Modulo on a zero divisor. It
// propagates through work.Work.Err rather than panicking, so a faulty
// program surfaces a normal error instead of crashing a worker goroutine.
var errDivideByZero = errors.New("ops: division by zero")
