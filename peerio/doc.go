// Package peerio provides the asynchronous I/O core for peer-to-peer
// applications: a future-based read/write model, a non-destructive
// look-ahead buffer, and composable stream decorators for binary encoding,
// signing/verification, record encryption, compression, and erasure coding.
//
// The building blocks live in focused subpackages:
//   - future: single-assignment asynchronous result containers
//   - stream: the IStream/OStream capability set, BufferedStream, and the
//     binary encoder/decoder
//   - crypt, crypt/ecdsa: cryptographic stream decorators
//   - compress: LZ4 stream decorators
//   - erasure: Reed-Solomon shard fan-out
//   - transport: adapters lifting established connections into streams
//   - ip: address-family value types
//
// Decorators hold a borrowed reference to exactly one downstream stream, so
// they compose to arbitrary depth; lifetime of the downstream stays with the
// caller.
package peerio
