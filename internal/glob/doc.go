// Package glob compiles content patterns into path predicates.
//
// The supported syntax is the one used by utility-stylesheet content lists:
//
//	*        any run of characters except '/'
//	**       any run of characters including '/', as a whole path segment
//	{a,b,c}  alternation, nested groups allowed
//
// Compilation never touches the file system. A Pattern only answers whether a
// hypothetical slash-separated path is selected; walking a tree is left to the
// caller (see internal/scan).
package glob
