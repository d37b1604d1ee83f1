// Package touch implements capacitive pad sensing on top of a polled
// scan controller.
//
// A Sensor keeps one calibration Level per pad, scans the two pads
// alternately (one blocking wait per call) and raises a bit in a FlagCell
// whenever a raw count exceeds the pad's threshold. The consumer drains the
// cell with Take, which clears it.
//
// ScanAndEvaluate must be called periodically: a period below ~5ms may find
// the previous scan still running, one above ~25ms may miss a short touch.
package touch
