/*
Package charbuf provides an append-only character buffer over pooled
storage.

A [Buffer] rents its backing block from a process-wide pool, grows by
rent-copy-return with geometric growth, and hands the block back on
[Buffer.Release] or [Buffer.TakeString]. The pool is safe for concurrent
rent and return; an individual Buffer is a single-owner resource and must
not be shared between goroutines.
*/
package charbuf
