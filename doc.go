// Package aads is a small in-memory library of generic algorithms and
// data structures: a segment tree for logarithmic range aggregation,
// classic textbook sorts, and number-theory primitives.
//
// 🚀 What is aads?
//
//	A modern, dependency-light library that brings together:
//		• SegmentTree[T]: point updates + half-open range folds under any
//		  associative combiner, O(log n) per operation
//		• Sortings: bubble, selection, insertion and counting sort with
//		  caller-supplied comparators
//		• Algebra: exponentiation by squaring over arbitrary
//		  multiplications, extended Euclidean GCD
//
// ✨ Why choose aads?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – sentinel errors, no silent clamping, no panics
//     on user input
//   - Pure Go – no cgo, no hidden deps
//   - Generic – combiners, comparators and multiplications are plain
//     function values, no interface gymnastics
//
// Everything is organized under three subpackages:
//
//	segtree/  — generic segment tree: build, Update, Query, Get
//	sortings/ — bubble/selection/insertion/counting sort
//	algebra/  — binary exponentiation, extended GCD
//
// Quick ASCII example — a sum tree over [1,2,3,4,5]:
//
//	         [15]
//	        /    \
//	     [3]      [12]
//	    /   \    /    \
//	  [1]   [2] [3]   [9]
//	                 /   \
//	               [4]   [5]
//
// Runnable scenarios live in examples/; each subpackage carries its own
// doc.go, example tests and benchmarks.
//
//	go get github.com/katalvlaran/aads
package aads
