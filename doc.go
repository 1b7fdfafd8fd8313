// Package cruise holds the economics of a small fleet of cruise ships and
// the few operations used to explore it.
//
// The core functionalities include:
//   - Ledger: the ordered, in-memory table of ships, loaded once from a fixed
//     dataset by [Load].
//   - Schema: the fixed list of columns with their native types, used to
//     convert user text into typed values and to filter ships by equality.
//   - Profit: the derived profit column and its average, maximum and minimum.
//   - Query: JSONPath expressions over the JSON form of the table.
//
// This package is the foundation of the `cruise` command-line tool.
package cruise
