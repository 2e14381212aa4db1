// SPDX-License-Identifier: MIT

// Package report writes query results as tab-separated tables with a
// header line. Every writer flushes before returning and reports the
// first write error.
package report
