// Package dataset loads job tables from CSV or JSON files.
//
// A job is one (worker, begin, end, optional group) row. CSV files need a
// header; column names are matched case-insensitively and default to
// "worker", "begin", "end" and "group". JSON input is either a bare array
// of job objects or an object with a "jobs" array:
//
//	{"jobs": [{"worker": "gpu-0", "begin": 0, "end": 12.5, "group": "train"}]}
//
// begin and end are numbers or timestamps. Timestamps are converted to Unix
// seconds and the table is flagged [Table.TimeAxis]; a table mixing both
// kinds is rejected. Rows with begin > end are kept but reported through
// [Table.Warnings].
package dataset
