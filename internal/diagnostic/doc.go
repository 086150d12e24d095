// Package diagnostic accumulates generation-time findings.
//
// Schema resolution never stops at the first fault: every group is checked
// and all findings are collected, then generation proceeds only when no
// error-severity diagnostic exists.
package diagnostic
