/*
Package index provides an ordered multiset with stable element handles and
fallible comparisons.

It backs containers which keep secondary, derived orderings in sync with a
primary one. Such containers need two guarantees:

  - Handles (`*Node`) to existing elements stay valid across insertions and
    removals of other elements. A handle is invalidated exactly when the
    element it denotes is removed.
  - Comparisons are supplied by the client and may fail. Every operation that
    compares does so before it changes any structure, so a failing comparison
    leaves the tree untouched. Removal by handle never compares and never fails.

Equivalent items (neither less than the other) may coexist. A new item is
placed after all items equivalent to it.

The implementation is a treap with parent links. Rotations relink nodes but
never move items between nodes.

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
package index

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'maxima'
func tracer() tracing.Trace {
	return tracing.Select("maxima")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
