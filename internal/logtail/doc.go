// Package logtail reads the tail of the render log and parses its lines for
// the console view.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so it scans the file once and
// keeps O(maxLines) memory regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//	if err != nil {
//		return err
//	}
//
// A missing file is not an error; the console simply shows nothing until the
// first event is written.
//
// # Parsing
//
// The render log is written by zap's JSON encoder. Parse extracts the
// timestamp (clock part only), level, message and component, and flattens
// every other field into sorted "key=value" strings. Non-JSON lines are kept
// verbatim as the message.
package logtail
