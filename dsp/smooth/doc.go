// Package smooth provides single-pole recursive smoothing filters for
// scalar time series.
//
// Each filter consumes one sample per call and keeps a single scalar of
// state between calls, so a long noisy stream can be smoothed without
// buffering history. Three variants share the [Filter] contract:
//
//   - [EMA] tracks the input amplitude directly (linear exponential
//     moving average).
//   - [RMS] smooths in the power domain (squared magnitude under a
//     square root), appropriate for energy-like quantities such as AC
//     power or vibration levels. Its output is never negative.
//   - [Asymmetric] rises and falls at different rates, for peak
//     followers, alarm levels and battery-style indicators.
//
// The filters are time-step agnostic: they react to every sample the
// same way regardless of the real time elapsed between samples.
// Smoothing coefficients are fixed at construction; build a new filter
// to change them.
package smooth
