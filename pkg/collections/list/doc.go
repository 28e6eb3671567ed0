// Package list provides LinkedList[T], a doubly linked sequence with O(1)
// access to both ends. It is the storage used by the queue and stack
// packages and by the iteration surface of the other collections.
//
// Nodes live in an arena owned by the list and link to each other by slot
// index, so a popped node can never be reached again through a stale
// back link. Freed slots are recycled by later pushes.
//
// Key operations:
// - PushFront/PushBack, PopFront/PopBack: O(1) at either end
// - Front/Back/At: read without removing, returning option.Option
// - Append/AppendFront: move another list's elements in, emptying it
// - Reverse: relink in place
// - Iter/Enumerate/Rev/All: single-pass iteration
//
// A LinkedList is not safe for concurrent mutation. The zero value is an
// empty list ready to use.
package list
