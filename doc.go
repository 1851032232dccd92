// Package skipnav provides an ordered Map and Set built on a skip list with
// a fixed number of levels.
//
// Besides exact lookups, both collections answer navigation queries: Floor
// (greatest key <= k), Ceiling (least key >= k), Higher (least key > k),
// Lower (greatest key < k), First and Last. Keys are ordered by a
// Comparator supplied at construction; NullsFirst lifts a Comparator to
// Nullable keys, ordering an unset key below an explicitly null one and both
// below every value.
//
// The number of levels is set once with WithMaxHeight (default 3). The
// first nodes fill the empty levels bottom up; after that each node draws its
// height uniformly from [1, maxHeight-1]. The top level therefore only
// changes when its head is removed, and for large collections lookups
// degrade toward a linear scan of the bottom level. Exact lookups use the
// same descent as the navigation queries; there is no hash index.
//
// Views returned by KeySet, EntrySet and View, and the Cursor and Steps
// iterators, hold no snapshot. They re-read the structure on every step and
// must not be used while the collection is being modified. Neither Map nor
// Set is safe for concurrent use.
//
// Building with the "invariants" tag validates the structure after every
// mutation and panics on the first violation.
package skipnav
