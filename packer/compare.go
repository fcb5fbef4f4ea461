package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Packed size of the rows under a general-purpose codec, for reference.
type CompareResult struct {
	name string
	size int
	err  error
}

type referenceCodec struct {
	name string
	pack func(src []byte) ([]byte, error)
}

var referenceCodecs = []referenceCodec{
	{"lz4", packLZ4},
	{"s2", packS2},
	{"zstd", packZstd},
}

func packLZ4(src []byte) ([]byte, error) {
	c := lz4.CompressorHC{Level: lz4.Level9}
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := c.CompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	// Zero means the block is not compressible and would be stored raw.
	if n == 0 {
		return src, nil
	}
	return dst[:n], nil
}

func packS2(src []byte) ([]byte, error) {
	return s2.EncodeBest(nil, src), nil
}

func packZstd(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

// Pack raw with every reference codec concurrently. Results are sorted by name.
func CompareCodecs(raw []byte) []CompareResult {
	messages := make(chan CompareResult, len(referenceCodecs))

	// Launch the async packers
	for _, rc := range referenceCodecs {
		go func(rc referenceCodec) {
			packed, err := rc.pack(raw)
			messages <- CompareResult{rc.name, len(packed), err}
		}(rc)
	}

	// ... Collect.
	results := make([]CompareResult, 0, len(referenceCodecs))
	for range referenceCodecs {
		results = append(results, <-messages)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].name < results[j].name
	})
	return results
}

// Digest of a buffer, printed in reports to identify inputs and check round trips.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func PrintComparison(w io.Writer, raw []byte, packedSize int, results []CompareResult) {
	fmt.Fprintln(w, "===== Compare =====")
	fmt.Fprintf(w, "Input digest:     %s\n", Digest(raw))
	fmt.Fprintf(w, "Original size:    %6d\n", len(raw))
	fmt.Fprintf(w, "%-17s %6d (%.1f%%)\n", "ground:", packedSize, Percent(packedSize, len(raw)))
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%-17s error: %v\n", r.name+":", r.err)
			continue
		}
		fmt.Fprintf(w, "%-17s %6d (%.1f%%)\n", r.name+":", r.size, Percent(r.size, len(raw)))
	}
}
