// Package stream lifts the async higher-order functions over channels,
// applying the supplied function to one element at a time: the next element
// is not consumed until the previous computation has finished and its result
// has been handed off. There is no fan-out and no batching; ordering is the
// input ordering.
//
// Common usage:
// - ToChan/ToChanResults: feed values into a pipeline
// - Map: element-wise transformation over a plain channel
// - MapResults/AndThenResults/TryResults: res combinators over result channels
// - FromChan/FromChanFirst: drain a pipeline back into values
package stream
