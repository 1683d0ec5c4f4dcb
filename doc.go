// Package stats provides a fixed-capacity rolling sample window with
// type-generic statistics (max, min, mean, variance, standard deviation)
// designed for targets that may lack a floating-point unit.
//
// A [Store] owns a contiguous byte buffer of capacity×itemSize bytes and
// appends samples in overwrite-oldest ring order. Reducers are pure reads
// over the full window, parameterized by the sample's numeric type:
//
//   - Integer types (uint8, int8, uint16, int16, uint32, int32) are
//     aggregated in 64-bit signed integer arithmetic. Mean, Variance and
//     Stdev return fixed-point results scaled by [Scale] (×1000), so no
//     floating-point hardware is touched on the integer path.
//   - Float types (float32, float64) are aggregated in float64 and returned
//     unscaled. The standard deviation uses a bit-level Newton square root
//     instead of a library sqrt.
//
// Reducers always scan all capacity slots: slots never written still read as
// zero from the zero-initialized buffer. [Store.HasFullWindow] reports whether
// the ring has wrapped at least once, i.e. whether every slot has been
// populated by a real sample.
//
// # Usage
//
//	st, err := stats.NewStore(stats.SizeOf[uint8](), 4)
//	if err != nil {
//	    // handle err
//	}
//	defer st.Free()
//
//	for _, v := range []uint8{1, 21, 79, 100, 31, 85} {
//	    stats.Append(st, v)
//	}
//
//	mean := stats.Mean[uint8](st) // scaled: divide by stats.Scale
//	fmt.Printf("mean = %d.%03d\n", mean/stats.Scale, mean%stats.Scale)
//
// A Store is not safe for concurrent use: AddSample mutates the shared bytes
// in place. Callers needing concurrent access must serialize externally.
package stats
