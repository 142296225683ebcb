// Package kontoauszug converts the extracted text of a brokerage account
// statement (Kontoauszug) into a normalized list of currently-held securities
// with quantity and average cost basis, ready for import into a
// portfolio-tracking tool.
//
// The pipeline is a pure, in-memory transformation in two stages:
//
//   - [ExtractTrades] scans the statement lines and recognizes discrete
//     buy/sell trade records, even when a single logical entry has been
//     wrapped across several physical lines by the text extraction.
//   - [Aggregate] folds the chronological trade list into per-security net
//     positions using a running average-cost-basis method.
//
// Everything around the core (reading the statement file, writing the CSV,
// printing the console summary) lives in the cmd package and is mechanical
// I/O. The package holds no state between invocations: every run recomputes
// the positions from the full statement text.
package kontoauszug
