/*
Package maxima offers a container for partial functions over an ordered
domain which keeps track of the function's local maxima.

Function Maxima

A Function maps arguments of type A to values of type V. Both types are
ordered by relations supplied by the client. Alongside the mapping, a
Function maintains the set of its local maxima: a point is a local maximum if
neither of its immediate neighbours (by argument) has a strictly greater
value. Neighbours of equal value do not disqualify a point, so every point
of a plateau which is not dominated at its borders is a maximum.

	f := maxima.NewOrdered[int, int]()
	f.SetValue(0, 0)
	f.SetValue(1, 0)
	f.SetValue(2, 0) // maxima: (0,0) (1,0) (2,0)
	f.SetValue(1, 1) // maxima: (1,1)

The maxima are re-evaluated incrementally. Changing the value at one argument
touches at most three candidates: the changed point and its two neighbours.

Failing comparisons

Orders are of type Order[T] and may fail. Mutations are transactional:
if an order reports an error (or panics) during SetValue or Erase, every
change made so far is undone before the error is returned (or the panic is
re-raised). The Function is then indistinguishable from its state before
the call.

A Function is not safe for concurrent use. Clients needing concurrent access
have to serialize calls externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package maxima

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaximaError is an error type for the maxima module
type MaximaError string

func (e MaximaError) Error() string {
	return string(e)
}

// ErrNotFound is flagged whenever an argument is looked up which is not part
// of the function's domain.
const ErrNotFound = MaximaError("argument is out of the domain")

// ErrInvalidConfig is flagged whenever a Function is created from an
// incomplete configuration.
const ErrInvalidConfig = MaximaError("invalid configuration")

// ErrCorrupt is reported by Check if the maxima index has diverged from the
// domain.
const ErrCorrupt = MaximaError("maxima index out of sync")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
