// Package compress provides the compression/decompression layer used to
// wrap section payloads.
//
// # Algorithms
//
//   - None: no compression; used where the bit-packed payload is already
//     small and dense (e.g. restriction sections by default).
//   - Deflate: the algorithm spec.md mandates for traffic-value sections
//     (wrapped via github.com/klauspost/compress/flate).
//   - S2, LZ4, Zstd: carried over from the teacher for optional use on large
//     restriction sections via restriction.EncodeCompressed, trading CPU for
//     size on bandwidth-constrained transport.
//
// All five implement the Codec interface (Compressor + Decompressor) so a
// caller can select an algorithm by format.CompressionType without a type
// switch of its own; see CreateCodec and GetCodec.
package compress
