// Package engagementledger keeps the per-file download ledger: one aggregated
// entry per file with a frequency counter, a download sub-log and a freshness
// status, ordered most-recently-touched first.
//
// File metadata is never copied into entries; it is joined from the file
// registry on every read.
package engagementledger
