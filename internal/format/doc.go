// Package format turns raw byte counts and modification times into the
// human-readable strings shown in a report.
package format
